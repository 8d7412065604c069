package chatbot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyQuestion     = errors.New("chatbot: empty canonical question")
	ErrDuplicateQuestion = errors.New("chatbot: duplicate canonical question")
)

// Entry pairs a canonical question with its answer.
type Entry struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// KnowledgeBase is an ordered, read-only list of canned answers. Order
// decides ties during matching.
type KnowledgeBase struct {
	entries []Entry
	index   map[string]int
}

// NewKnowledgeBase normalizes each question and builds a knowledge base in
// the given order.
func NewKnowledgeBase(entries ...Entry) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		q := normalize(e.Question)
		if q == "" {
			return nil, ErrEmptyQuestion
		}
		if _, dup := kb.index[q]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateQuestion, q)
		}
		kb.index[q] = len(kb.entries)
		kb.entries = append(kb.entries, Entry{Question: q, Answer: e.Answer})
	}
	return kb, nil
}

// Entries returns a copy of the entries in match order.
func (kb *KnowledgeBase) Entries() []Entry {
	if kb == nil {
		return nil
	}
	out := make([]Entry, len(kb.entries))
	copy(out, kb.entries)
	return out
}

// Len reports the number of canonical questions.
func (kb *KnowledgeBase) Len() int {
	if kb == nil {
		return 0
	}
	return len(kb.entries)
}

// Match is shorthand for Match(utterance, kb).
func (kb *KnowledgeBase) Match(utterance string) string {
	return Match(utterance, kb)
}

type knowledgeFile struct {
	Entries []Entry `yaml:"entries"`
}

// ParseKnowledgeBase decodes a YAML document of the form
//
//	entries:
//	  - question: tell me about yourself
//	    answer: ...
//
// keeping the sequence order.
func ParseKnowledgeBase(r io.Reader) (*KnowledgeBase, error) {
	var f knowledgeFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}
	return NewKnowledgeBase(f.Entries...)
}

// LoadKnowledgeBase reads a YAML knowledge base from path.
func LoadKnowledgeBase(path string) (*KnowledgeBase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open knowledge base: %w", err)
	}
	defer f.Close()
	return ParseKnowledgeBase(f)
}

// DefaultKnowledgeBase returns the built-in answers about Ardama.
func DefaultKnowledgeBase() *KnowledgeBase {
	kb, err := NewKnowledgeBase(defaultEntries...)
	if err != nil {
		panic(err)
	}
	return kb
}

var defaultEntries = []Entry{
	{
		Question: "tell me about yourself",
		Answer:   "Hi! I'm Ardama, a passionate full-stack engineer with 5+ years of experience building innovative web applications and AI-powered solutions. I love exploring the intersection of technology and human experience, constantly pushing the boundaries of what's possible with modern web technologies.",
	},
	{
		Question: "what's your background",
		Answer:   "I have a strong background in computer science and have been professionally developing software for over 5 years. I've worked at both startups and larger tech companies, giving me experience with different scales and types of projects. I'm passionate about both frontend and backend development, with a particular interest in AI and machine learning applications.",
	},
	{
		Question: "what are your main skills",
		Answer:   "My core expertise includes React, Next.js, TypeScript, Node.js, and Python. I'm also experienced with cloud platforms like AWS, containerization with Docker, and modern development practices. Recently, I've been diving deep into AI/ML technologies, particularly TensorFlow and building AI-powered web applications.",
	},
	{
		Question: "what projects are you most proud of",
		Answer:   "I'm particularly proud of NeuralChat AI Platform - a revolutionary communication system that leverages neural networks for intelligent interactions. I also developed Quantum Portfolio Engine, which uses quantum computing principles for financial optimization. These projects showcase my ability to work with cutting-edge technologies.",
	},
	{
		Question: "what's your experience with react",
		Answer:   "I've been working with React for over 5 years, from the class component days to modern hooks and beyond. I'm experienced with the entire React ecosystem including Redux, Context API, React Router, and testing with Jest and React Testing Library. I also have extensive experience with Next.js for production applications.",
	},
	{
		Question: "how did you get into programming",
		Answer:   "I started programming in college, initially drawn to the logical problem-solving aspect. My first 'aha!' moment was building a simple web app that helped students find study groups. Seeing how code could solve real problems and create meaningful experiences hooked me. I've been passionate about it ever since!",
	},
	{
		Question: "what's your work philosophy",
		Answer:   "I believe in writing clean, maintainable code that not only works but is a joy to work with. I'm a strong advocate for user-centered design and think the best technology is invisible to the end user. Collaboration and continuous learning are core to how I approach every project.",
	},
	{
		Question: "what are your career goals",
		Answer:   "I'm focused on becoming a technical leader who can bridge the gap between complex technology and real-world solutions. I'm particularly interested in the ethical development of AI systems and want to contribute to making technology more accessible and beneficial for everyone.",
	},
}
