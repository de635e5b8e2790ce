package dataset

import (
	"math/rand"
	"strings"

	"CareerGuide/internal/session"
)

// generalResponses are open-ended clarifying prompts used when nothing in the
// dataset matches.
var generalResponses = []string{
	"I understand you're looking for guidance. Could you tell me a bit more about your specific situation or question?",
	"That's an important question. Let me help you think through this - what are your main interests or concerns right now?",
	"I'd be happy to help with that. Could you provide a bit more context about what you're looking for?",
	"Many students face similar questions. Let's work through this together - what have you considered so far?",
	"I want to make sure I give you the best advice. Could you share more details about your situation?",
	"That's a great question! To help you better, could you tell me more about what specifically you'd like to know?",
	"I'm here to help with academic and career guidance. What aspect are you most curious or concerned about?",
}

// followUps continue an existing thread when the conversation already has an
// assistant turn to build on.
var followUps = []string{
	"Could you tell me more about that?",
	"What specifically would you like to know about this?",
	"I'd be happy to explore this further with you. What aspect are you most curious about?",
	"Let me help you think this through. What are your main considerations?",
	"That's an important point. Could you share more about your situation?",
}

// Advisor produces last-resort answers. The random source is injected so
// tests can pin selection.
type Advisor struct {
	rng *rand.Rand
}

// NewAdvisor creates an Advisor drawing from the given random source.
func NewAdvisor(rng *rand.Rand) *Advisor {
	return &Advisor{rng: rng}
}

// GeneralAdvice returns one generic clarifying prompt, chosen uniformly at
// random. It never fails.
func (a *Advisor) GeneralAdvice() string {
	return generalResponses[a.rng.Intn(len(generalResponses))]
}

// ContextualFallback is the terminal stage of the answer cascade. It re-runs
// the dataset matcher, and when that still produces nothing useful it looks
// at the recent conversation: if there is a prior assistant turn the reply
// continues that thread, otherwise it falls back to GeneralAdvice.
func (a *Advisor) ContextualFallback(query string, pairs []Entry, history []session.Message) string {
	if answer, ok := Match(query, pairs); ok && len(strings.TrimSpace(answer)) > 10 {
		return answer
	}

	recent := history
	if len(recent) > 4 {
		recent = recent[len(recent)-4:]
	}
	nonSystem := make([]session.Message, 0, len(recent))
	for _, msg := range recent {
		if msg.Role != session.RoleSystem {
			nonSystem = append(nonSystem, msg)
		}
	}

	if len(nonSystem) >= 2 {
		for i := len(nonSystem) - 1; i >= 0; i-- {
			if nonSystem[i].Role == session.RoleAssistant {
				return followUps[a.rng.Intn(len(followUps))]
			}
		}
	}

	return a.GeneralAdvice()
}
