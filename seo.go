package main

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"
)

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var sitemapSections = []struct {
	fragment   string
	changeFreq string
	priority   float64
}{
	{"", "weekly", 1},
	{"#about", "monthly", 0.8},
	{"#skills", "monthly", 0.8},
	{"#projects", "weekly", 0.9},
	{"#contact", "monthly", 0.7},
}

func (s *site) sitemap() sitemapURLSet {
	lastMod := s.startedAt.UTC().Format("2006-01-02")
	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, sec := range sitemapSections {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.cfg.SiteURL + sec.fragment,
			LastMod:    lastMod,
			ChangeFreq: sec.changeFreq,
			Priority:   sec.priority,
		})
	}
	return set
}

func (s *site) setupSEORoutes(r *gin.Engine) {
	r.GET("/sitemap.xml", func(c *gin.Context) {
		c.XML(http.StatusOK, s.sitemap())
	})

	r.GET("/robots.txt", func(c *gin.Context) {
		c.String(http.StatusOK, "User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", s.cfg.SiteURL)
	})
}
