package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardama18/neo-portfolio/internal/chatbot"
	"github.com/ardama18/neo-portfolio/internal/log"
)

type chatRequest struct {
	Message string `json:"message" form:"message" binding:"max=1000"`
}

func (s *site) setupChatRoutes(r *gin.Engine) {
	r.GET("/chat/questions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"greeting":    s.bot.Greeting(),
			"suggestions": s.bot.Suggestions(4),
			"questions":   s.bot.Suggestions(0),
		})
	})

	// HTMX chat endpoint - returns the user and assistant bubbles
	r.POST("/chat", func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBind(&req); err != nil {
			c.HTML(http.StatusOK, "chat-error.html", gin.H{
				"error": "Please keep your question under 1000 characters.",
			})
			return
		}

		reply, err := s.bot.Reply(c.Request.Context(), req.Message)
		if err != nil {
			// HTMX only swaps 2xx responses
			_, msg := chatFailure(err)
			c.HTML(http.StatusOK, "chat-error.html", gin.H{
				"error": msg,
			})
			return
		}

		c.HTML(http.StatusOK, "chat-messages.html", gin.H{
			"messages": []chatbot.Message{s.bot.Echo(req.Message), reply},
		})
	})

	r.POST("/api/chat", func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		reply, err := s.bot.Reply(c.Request.Context(), req.Message)
		if err != nil {
			status, msg := chatFailure(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"question": s.bot.Echo(req.Message),
			"reply":    reply,
		})
	})
}

func chatFailure(err error) (int, string) {
	if errors.Is(err, chatbot.ErrEmptyMessage) {
		return http.StatusBadRequest, "Type a question first."
	}
	log.Warnf("Chat reply abandoned: %v", err)
	return http.StatusServiceUnavailable, "The assistant is busy, please try again."
}
