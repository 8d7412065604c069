package chatbot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotReply(t *testing.T) {
	bot := NewBot(DefaultKnowledgeBase(), WithThinkDelay(0, 0))

	msg, err := bot.Reply(context.Background(), "What are your main skills?")
	require.NoError(t, err)
	assert.False(t, msg.IsUser)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Timestamp.IsZero())
	assert.Contains(t, msg.Content, "React, Next.js, TypeScript")
}

func TestBotReplyEmpty(t *testing.T) {
	bot := NewBot(DefaultKnowledgeBase(), WithThinkDelay(0, 0))
	_, err := bot.Reply(context.Background(), "  \t")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestBotReplyHonoursContext(t *testing.T) {
	bot := NewBot(DefaultKnowledgeBase(), WithThinkDelay(time.Hour, time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bot.Reply(ctx, "tell me about yourself")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBotReplyWaits(t *testing.T) {
	bot := NewBot(DefaultKnowledgeBase(), WithThinkDelay(20*time.Millisecond, 30*time.Millisecond))
	start := time.Now()
	_, err := bot.Reply(context.Background(), "banana")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestBotMessages(t *testing.T) {
	bot := NewBot(DefaultKnowledgeBase())

	g := bot.Greeting()
	assert.False(t, g.IsUser)
	assert.Contains(t, g.Content, "AI assistant")

	u := bot.Echo("  hi there ")
	assert.True(t, u.IsUser)
	assert.Equal(t, "hi there", u.Content)
	assert.NotEqual(t, g.ID, u.ID)
}

func TestBotSuggestions(t *testing.T) {
	bot := NewBot(DefaultKnowledgeBase())
	assert.Equal(t, SuggestedQuestions[:4], bot.Suggestions(4))
	assert.Len(t, bot.Suggestions(0), len(SuggestedQuestions))
	assert.Len(t, bot.Suggestions(100), len(SuggestedQuestions))
}
