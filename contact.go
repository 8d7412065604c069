package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ardama18/neo-portfolio/internal/config"
	"github.com/ardama18/neo-portfolio/internal/log"
	"github.com/ardama18/neo-portfolio/internal/store"
)

var errMailNotConfigured = errors.New("SMTP credentials not configured")

var projectTypes = []struct {
	Value string
	Label string
	Icon  string
}{
	{"freelance", "Freelance Project", "💼"},
	{"fulltime", "Full-time Role", "🏢"},
	{"collaboration", "Collaboration", "🤝"},
	{"other", "Something Else", "💡"},
}

type contactForm struct {
	Name    string `form:"fullName" binding:"required,max=100"`
	Email   string `form:"email" binding:"required,email,max=254"`
	Message string `form:"message" binding:"required,max=5000"`
	Type    string `form:"type" binding:"omitempty,oneof=freelance fulltime collaboration other"`
}

type mailer interface {
	Send(m store.ContactMessage) error
}

type smtpMailer struct {
	host, port string
	user, pass string
	to         string
}

func newSMTPMailer(cfg config.Config) *smtpMailer {
	return &smtpMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		to:   cfg.ToEmail,
	}
}

func (s *site) setupContactRoutes(r *gin.Engine) {
	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title":        "Contact Me",
			"projectTypes": projectTypes,
		})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", func(c *gin.Context) {
		var form contactForm
		if err := c.ShouldBind(&form); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Please fill in your name, a valid email address and a message.",
			})
			return
		}
		if form.Type == "" {
			form.Type = "freelance"
		}

		msg := store.ContactMessage{
			Name:    strings.TrimSpace(form.Name),
			Email:   strings.TrimSpace(form.Email),
			Message: strings.TrimSpace(form.Message),
			Type:    form.Type,
		}
		id, err := s.store.SaveContact(c.Request.Context(), msg)
		if err != nil {
			log.Errorf("Error saving contact message: %v", err)
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		if err := s.mail.Send(msg); err != nil {
			log.Warnf("Contact message %d stored but not mailed: %v", id, err)
		} else if err := s.store.MarkContactNotified(c.Request.Context(), id); err != nil {
			log.Errorf("Error marking contact message %d notified: %v", id, err)
		}

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})
}

func (m *smtpMailer) Send(c store.ContactMessage) error {
	if m.user == "" || m.pass == "" {
		return errMailNotConfigured
	}

	subject := fmt.Sprintf("Portfolio Contact (%s): %s", c.Type, headerSafe(c.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Type: %s
Message:
%s

---
Sent from your portfolio contact form
`, c.Name, c.Email, c.Type, c.Message)

	msg := []byte("To: " + m.to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.user + "\r\n" +
		"Reply-To: " + headerSafe(c.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.user, []string{m.to}, msg); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}

	log.Infof("Email sent successfully from %s (%s)", c.Name, c.Email)
	return nil
}

// headerSafe strips line breaks so form input cannot inject mail headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
