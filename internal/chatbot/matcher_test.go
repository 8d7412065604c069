package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKB(t *testing.T, entries ...Entry) *KnowledgeBase {
	t.Helper()
	kb, err := NewKnowledgeBase(entries...)
	require.NoError(t, err)
	return kb
}

func TestMatch(t *testing.T) {
	kb := newTestKB(t,
		Entry{Question: "what are your main skills", Answer: "A1"},
		Entry{Question: "what's your experience with react", Answer: "A2"},
	)

	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{"exact match", "what are your main skills", "A1"},
		{"exact match after normalizing", "  What Are Your MAIN skills \t", "A1"},
		{"partial match picks highest score", "what skills do you have", "A1"},
		{"partial match second key", "any react experience?", "A2"},
		{"no overlap", "banana", Fallback},
		{"empty", "", Fallback},
		{"whitespace only", "   \n ", Fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.utterance, kb))
		})
	}
}

func TestMatchExactMatchIdentity(t *testing.T) {
	kb := DefaultKnowledgeBase()
	for _, e := range kb.Entries() {
		assert.Equal(t, e.Answer, Match(e.Question, kb), e.Question)
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	kb := DefaultKnowledgeBase()
	assert.Equal(t, Match("tell me about yourself", kb), Match("Tell Me About Yourself", kb))
	assert.NotEqual(t, Fallback, Match("Tell Me About Yourself", kb))
}

func TestMatchDeterministic(t *testing.T) {
	kb := DefaultKnowledgeBase()
	for _, q := range SuggestedQuestions {
		assert.Equal(t, Match(q, kb), Match(q, kb), q)
	}
}

func TestMatchTieGoesToEarlierEntry(t *testing.T) {
	first := newTestKB(t,
		Entry{Question: "alpha beta", Answer: "X"},
		Entry{Question: "alpha gamma", Answer: "Y"},
	)
	assert.Equal(t, "X", Match("alpha", first))

	swapped := newTestKB(t,
		Entry{Question: "alpha gamma", Answer: "Y"},
		Entry{Question: "alpha beta", Answer: "X"},
	)
	assert.Equal(t, "Y", Match("alpha", swapped))
}

func TestMatchSubstringEitherWay(t *testing.T) {
	kb := newTestKB(t, Entry{Question: "is", Answer: "A"})
	assert.Equal(t, "A", Match("i", kb))
	assert.Equal(t, "A", Match("this", kb))
}

func TestMatchEmptyKnowledgeBase(t *testing.T) {
	assert.Equal(t, Fallback, Match("tell me about yourself", nil))
	assert.Equal(t, Fallback, Match("tell me about yourself", newTestKB(t)))
}

func TestMatchSuggestedQuestionsHitTheirAnswers(t *testing.T) {
	kb := DefaultKnowledgeBase()
	entries := kb.Entries()
	require.Len(t, entries, len(SuggestedQuestions))
	for i, q := range SuggestedQuestions {
		assert.Equal(t, entries[i].Answer, kb.Match(q), q)
	}
}
