package chatbot

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyMessage is returned by Reply for blank input.
var ErrEmptyMessage = errors.New("chatbot: empty message")

const greeting = "Hello! I'm Ardama's AI assistant. I can tell you about his background, skills, and experience. What would you like to know?"

// SuggestedQuestions are offered to visitors as one-click prompts.
var SuggestedQuestions = []string{
	"Tell me about yourself",
	"What's your background?",
	"What are your main skills?",
	"What projects are you most proud of?",
	"What's your experience with React?",
	"How did you get into programming?",
	"What's your work philosophy?",
	"What are your career goals?",
}

// Message is one entry of a chat transcript.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// Bot wraps a KnowledgeBase with the conversational bits of the widget.
type Bot struct {
	kb       *KnowledgeBase
	minDelay time.Duration
	maxDelay time.Duration
	now      func() time.Time
}

// Option configures a Bot.
type Option func(*Bot)

// WithThinkDelay makes Reply pause for a random duration in [lo, hi)
// before answering. Zero disables the pause.
func WithThinkDelay(lo, hi time.Duration) Option {
	return func(b *Bot) {
		if hi < lo {
			hi = lo
		}
		b.minDelay, b.maxDelay = lo, hi
	}
}

// NewBot returns a Bot answering from kb.
func NewBot(kb *KnowledgeBase, opts ...Option) *Bot {
	b := &Bot{
		kb:       kb,
		minDelay: time.Second,
		maxDelay: 2 * time.Second,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// KnowledgeBase returns the answers the bot draws from.
func (b *Bot) KnowledgeBase() *KnowledgeBase {
	return b.kb
}

// Greeting is the assistant's opening message.
func (b *Bot) Greeting() Message {
	return b.message(greeting, false)
}

// Suggestions returns up to n suggested questions; n <= 0 returns all of them.
func (b *Bot) Suggestions(n int) []string {
	if n <= 0 || n > len(SuggestedQuestions) {
		n = len(SuggestedQuestions)
	}
	out := make([]string, n)
	copy(out, SuggestedQuestions[:n])
	return out
}

// Echo wraps visitor text as a user message.
func (b *Bot) Echo(text string) Message {
	return b.message(strings.TrimSpace(text), true)
}

// Reply answers text after the configured think delay. It returns
// ctx.Err() if ctx is done first.
func (b *Bot) Reply(ctx context.Context, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}
	if d := b.thinkDelay(); d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Message{}, ctx.Err()
		case <-t.C:
		}
	}
	return b.message(Match(text, b.kb), false), nil
}

func (b *Bot) thinkDelay() time.Duration {
	if b.maxDelay <= b.minDelay {
		return b.minDelay
	}
	return b.minDelay + time.Duration(rand.Int63n(int64(b.maxDelay-b.minDelay)))
}

func (b *Bot) message(content string, isUser bool) Message {
	return Message{
		ID:        uuid.NewString(),
		Content:   content,
		IsUser:    isUser,
		Timestamp: b.now(),
	}
}
