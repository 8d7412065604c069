package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(env(nil))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Equal(t, "portfolio.db", cfg.DatabasePath)
	assert.Equal(t, time.Second, cfg.ThinkMin)
	assert.Equal(t, 2*time.Second, cfg.ThinkMax)
	assert.Equal(t, 8, cfg.TrackingWorkers)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.SMTPConfigured())
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(env(map[string]string{
		"PORT":              "9000",
		"SITE_URL":          "https://alexchen.dev/",
		"CHAT_THINK_MIN_MS": "0",
		"CHAT_THINK_MAX_MS": "250",
		"SMTP_USER":         "me@example.com",
		"SMTP_PASS":         "secret",
		"TRACKING_WORKERS":  "-3",
		"CORS_ORIGINS":      "https://a.dev, https://b.dev,,",
		"KNOWLEDGE_FILE":    "kb.yaml",
	}))

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://alexchen.dev", cfg.SiteURL)
	assert.Equal(t, time.Duration(0), cfg.ThinkMin)
	assert.Equal(t, 250*time.Millisecond, cfg.ThinkMax)
	assert.True(t, cfg.SMTPConfigured())
	assert.Equal(t, 8, cfg.TrackingWorkers)
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, cfg.CORSOrigins)
	assert.Equal(t, "kb.yaml", cfg.KnowledgeFile)
}
