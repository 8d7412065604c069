// Package portfolio holds the site's static content and queries over it.
package portfolio

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
)

// Project categories.
const (
	CategoryWeb    = "web"
	CategoryMobile = "mobile"
	CategoryAPI    = "api"
	CategoryML     = "ml"
	CategoryOther  = "other"
)

// Project statuses.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
	StatusConcept    = "concept"
)

type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Technologies    []string `json:"technologies"`
	ImageURL        string   `json:"imageUrl"`
	DemoURL         string   `json:"demoUrl,omitempty"`
	GithubURL       string   `json:"githubUrl,omitempty"`
	Featured        bool     `json:"featured"`
	Category        string   `json:"category"`
	Year            int      `json:"year"`
	Status          string   `json:"status"`
}

// Skill level is a percentage.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Years    int    `json:"years"`
	Icon     string `json:"icon,omitempty"`
}

type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	Current      bool     `json:"current"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Bio      string `json:"bio"`
}

// SkillGroup is the skills of one category.
type SkillGroup struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// Portfolio is the whole content set.
type Portfolio struct {
	Info        PersonalInfo `json:"personalInfo"`
	Projects    []Project    `json:"projects"`
	Skills      []Skill      `json:"skills"`
	Experiences []Experience `json:"experiences"`
}

// Default returns the site's content.
func Default() *Portfolio {
	return &Portfolio{
		Info:        personalInfo,
		Projects:    projects,
		Skills:      skills,
		Experiences: experiences,
	}
}

// FeaturedProjects returns the featured projects in listing order.
func (p *Portfolio) FeaturedProjects() []Project {
	var out []Project
	for _, pr := range p.Projects {
		if pr.Featured {
			out = append(out, pr)
		}
	}
	return out
}

// ProjectsByCategory filters projects; "" or "all" returns every project.
func (p *Portfolio) ProjectsByCategory(category string) []Project {
	if category == "" || category == "all" {
		return p.Projects
	}
	var out []Project
	for _, pr := range p.Projects {
		if pr.Category == category {
			out = append(out, pr)
		}
	}
	return out
}

// ProjectByID looks up a project.
func (p *Portfolio) ProjectByID(id string) (Project, bool) {
	for _, pr := range p.Projects {
		if pr.ID == id {
			return pr, true
		}
	}
	return Project{}, false
}

// SkillsByCategory groups skills, categories in order of first appearance.
func (p *Portfolio) SkillsByCategory() []SkillGroup {
	var groups []SkillGroup
	pos := map[string]int{}
	for _, s := range p.Skills {
		i, ok := pos[s.Category]
		if !ok {
			i = len(groups)
			pos[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

// CurrentExperience returns the current position, if any.
func (p *Portfolio) CurrentExperience() (Experience, bool) {
	for _, e := range p.Experiences {
		if e.Current {
			return e, true
		}
	}
	return Experience{}, false
}

var md = goldmark.New()

// RenderMarkdown converts a Markdown snippet to HTML.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
