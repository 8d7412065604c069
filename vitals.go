package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ardama18/neo-portfolio/internal/log"
	"github.com/ardama18/neo-portfolio/internal/store"
)

// vitalBeacon is the body navigator.sendBeacon posts to /api/vitals.
type vitalBeacon struct {
	Name      string   `json:"name" binding:"required,oneof=CLS INP FCP LCP TTFB FID"`
	Value     *float64 `json:"value" binding:"required"`
	Rating    string   `json:"rating" binding:"omitempty,oneof=good needs-improvement poor"`
	Delta     float64  `json:"delta"`
	ID        string   `json:"id" binding:"max=128"`
	URL       string   `json:"url" binding:"max=2048"`
	Timestamp int64    `json:"timestamp"`
}

func (s *site) setupVitalsRoutes(r *gin.Engine) {
	r.POST("/api/vitals", func(c *gin.Context) {
		var b vitalBeacon
		// sendBeacon posts text/plain, so decode as JSON regardless of Content-Type
		if err := c.ShouldBindJSON(&b); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		recorded := time.Now()
		if b.Timestamp > 0 {
			recorded = time.UnixMilli(b.Timestamp)
		}
		err := s.store.RecordVital(c.Request.Context(), store.Vital{
			MetricID:   b.ID,
			Name:       b.Name,
			Value:      *b.Value,
			Delta:      b.Delta,
			Rating:     b.Rating,
			URL:        b.URL,
			RecordedAt: recorded,
		})
		if err != nil {
			log.Errorf("Error recording web vital: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record metric"})
			return
		}
		log.Debugf("Web vital %s=%.2f (%s)", b.Name, *b.Value, b.Rating)
		c.Status(http.StatusNoContent)
	})
}
