// Package config reads the site settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the site settings.
type Config struct {
	Port         string
	SiteURL      string
	DatabasePath string
	LogLevel     string

	// KnowledgeFile optionally replaces the built-in chatbot answers.
	KnowledgeFile string
	ThinkMin      time.Duration
	ThinkMax      time.Duration

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	ToEmail  string

	AdminUsername string
	AdminPassword string

	TrackingWorkers int
	CORSOrigins     []string
}

// Load reads Config from the process environment.
func Load() Config {
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, filling in development defaults.
func FromEnv(getenv func(string) string) Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	return Config{
		Port:         get("PORT", "8080"),
		SiteURL:      strings.TrimRight(get("SITE_URL", "https://ardama18.github.io/neo-portfolio"), "/"),
		DatabasePath: get("DATABASE_PATH", "portfolio.db"),
		LogLevel:     get("LOG_LEVEL", "info"),

		KnowledgeFile: getenv("KNOWLEDGE_FILE"),
		ThinkMin:      millis(get("CHAT_THINK_MIN_MS", ""), time.Second),
		ThinkMax:      millis(get("CHAT_THINK_MAX_MS", ""), 2*time.Second),

		SMTPHost: get("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: get("SMTP_PORT", "587"),
		SMTPUser: getenv("SMTP_USER"),
		SMTPPass: getenv("SMTP_PASS"),
		ToEmail:  get("TO_EMAIL", "alex@example.com"),

		AdminUsername: getenv("ADMIN_USERNAME"),
		AdminPassword: getenv("ADMIN_PASSWORD"),

		TrackingWorkers: positive(get("TRACKING_WORKERS", ""), 8),
		CORSOrigins:     list(get("CORS_ORIGINS", "*")),
	}
}

// SMTPConfigured reports whether contact notifications can be mailed.
func (c Config) SMTPConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}

func millis(v string, def time.Duration) time.Duration {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return time.Duration(n) * time.Millisecond
}

func positive(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func list(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
