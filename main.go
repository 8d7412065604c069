package main

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/cors"

	"github.com/ardama18/neo-portfolio/internal/chatbot"
	"github.com/ardama18/neo-portfolio/internal/config"
	"github.com/ardama18/neo-portfolio/internal/log"
	"github.com/ardama18/neo-portfolio/internal/portfolio"
	"github.com/ardama18/neo-portfolio/internal/store"
)

// site is the running portfolio: content, chatbot, storage and admin state.
type site struct {
	cfg       config.Config
	store     *store.Store
	content   *portfolio.Portfolio
	bot       *chatbot.Bot
	mail      mailer
	tracker   *ants.Pool
	startedAt time.Time

	adminToken  string
	hashingSalt string
}

func newSite(cfg config.Config, st *store.Store, bot *chatbot.Bot, mail mailer) (*site, error) {
	tracker, err := ants.NewPool(cfg.TrackingWorkers, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}
	s := &site{
		cfg:       cfg,
		store:     st,
		content:   portfolio.Default(),
		bot:       bot,
		mail:      mail,
		tracker:   tracker,
		startedAt: time.Now(),
	}
	s.initAdminToken()
	return s, nil
}

func (s *site) close() {
	if err := s.tracker.ReleaseTimeout(5 * time.Second); err != nil {
		log.Warnf("Visitor tracking pool did not drain: %v", err)
	}
}

func (s *site) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(s.visitorTrackingMiddleware())

	r.SetFuncMap(template.FuncMap{
		"markdown":   portfolio.RenderMarkdown,
		"upper":      strings.ToUpper,
		"formatTime": func(t time.Time) string { return t.Format("15:04") },
	})
	r.LoadHTMLGlob("templates/*")

	r.Static("/static", "./static")

	// Home page route
	r.GET("/", func(c *gin.Context) {
		current, _ := s.content.CurrentExperience()
		c.HTML(http.StatusOK, "index.html", gin.H{
			"info":         s.content.Info,
			"hero":         HeroTagline,
			"about":        AboutMe,
			"featured":     s.content.FeaturedProjects(),
			"projects":     s.content.ProjectsByCategory(c.Query("category")),
			"skillGroups":  s.content.SkillsByCategory(),
			"experiences":  s.content.Experiences,
			"current":      current,
			"greeting":     s.bot.Greeting(),
			"suggestions":  s.bot.Suggestions(4),
			"chatIntro":    ChatIntro,
			"contactIntro": ContactIntro,
		})
	})

	// Project details modal
	r.GET("/projects/:id", func(c *gin.Context) {
		p, ok := s.content.ProjectByID(c.Param("id"))
		if !ok {
			c.HTML(http.StatusNotFound, "error.html", gin.H{
				"error": "Project not found",
			})
			return
		}
		c.HTML(http.StatusOK, "project-modal.html", gin.H{
			"project": p,
		})
	})

	r.GET("/api/portfolio", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.content)
	})

	s.setupChatRoutes(r)
	s.setupContactRoutes(r)
	s.setupSEORoutes(r)
	s.setupVitalsRoutes(r)
	s.setupAdminRoutes(r)

	r.GET("/healthz", func(c *gin.Context) {
		if err := s.store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func main() {
	cfg := config.Load()
	log.SetLevel(cfg.LogLevel)
	defer log.Sync()

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := st.Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	kb := chatbot.DefaultKnowledgeBase()
	if cfg.KnowledgeFile != "" {
		if kb, err = chatbot.LoadKnowledgeBase(cfg.KnowledgeFile); err != nil {
			log.Fatalf("Failed to load knowledge base: %v", err)
		}
	}
	log.Infof("Chatbot ready with %d canned answers", kb.Len())
	bot := chatbot.NewBot(kb, chatbot.WithThinkDelay(cfg.ThinkMin, cfg.ThinkMax))

	s, err := newSite(cfg, st, bot, newSMTPMailer(cfg))
	if err != nil {
		log.Fatalf("Failed to start visitor tracking: %v", err)
	}
	defer s.close()
	go s.cleanupOldVisitorData()

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "HX-Request", "HX-Target", "HX-Current-URL"},
	}).Handler(s.router())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Infof("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Shutdown: %v", err)
	}
}
