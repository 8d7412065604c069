// Package chatbot answers visitor questions from a fixed set of canned responses.
package chatbot

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback is returned when no canonical question overlaps the utterance.
const Fallback = "That's an interesting question! I'd love to discuss that further with you. " +
	"Feel free to ask about Ardama's background, skills, projects, or experience - I have lots of insights to share!"

// Match returns the answer whose canonical question best matches utterance.
//
// An exact match on the normalized utterance wins outright. Otherwise each
// question is scored by how many of its words overlap a word of the
// utterance, where two words overlap when either contains the other. The
// highest score wins and ties go to the earlier question. Fallback is
// returned when nothing scores.
func Match(utterance string, kb *KnowledgeBase) string {
	if kb == nil || len(kb.entries) == 0 {
		return Fallback
	}

	question := normalize(utterance)
	if i, ok := kb.index[question]; ok {
		return kb.entries[i].Answer
	}

	questionWords := strings.Fields(question)
	best, bestScore := -1, 0
	for i, e := range kb.entries {
		if score := overlap(strings.Fields(e.Question), questionWords); score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return Fallback
	}
	return kb.entries[best].Answer
}

// overlap counts the key words that share a substring relation with any
// question word.
func overlap(keyWords, questionWords []string) int {
	score := 0
	for _, kw := range keyWords {
		for _, qw := range questionWords {
			if strings.Contains(qw, kw) || strings.Contains(kw, qw) {
				score++
				break
			}
		}
	}
	return score
}

func normalize(s string) string {
	// A Caser keeps state, so a fresh one per call keeps Match safe for concurrent use.
	return strings.TrimSpace(cases.Lower(language.Und).String(s))
}
