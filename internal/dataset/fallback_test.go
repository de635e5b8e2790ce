package dataset

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareerGuide/internal/session"
)

func pinnedAdvisor() *Advisor {
	return NewAdvisor(rand.New(rand.NewSource(1)))
}

func TestGeneralAdviceDrawsFromPool(t *testing.T) {
	advisor := pinnedAdvisor()
	for i := 0; i < 20; i++ {
		assert.Contains(t, generalResponses, advisor.GeneralAdvice())
	}
}

func TestGeneralAdviceDeterministicWithPinnedSource(t *testing.T) {
	a := NewAdvisor(rand.New(rand.NewSource(7)))
	b := NewAdvisor(rand.New(rand.NewSource(7)))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.GeneralAdvice(), b.GeneralAdvice())
	}
}

func TestContextualFallbackPrefersDataset(t *testing.T) {
	advisor := pinnedAdvisor()
	pairs := []Entry{{Question: "career guidance", Answer: "a long enough dataset answer"}}

	answer := advisor.ContextualFallback("career guidance", pairs, nil)
	assert.Equal(t, "a long enough dataset answer", answer)
}

func TestContextualFallbackRejectsShortDatasetAnswer(t *testing.T) {
	advisor := pinnedAdvisor()
	pairs := []Entry{{Question: "career guidance", Answer: "short"}}

	answer := advisor.ContextualFallback("career guidance", pairs, nil)
	assert.NotEqual(t, "short", answer)
	assert.Contains(t, generalResponses, answer)
}

func TestContextualFallbackContinuesThread(t *testing.T) {
	advisor := pinnedAdvisor()
	now := time.Now()
	history := []session.Message{
		{Role: session.RoleSystem, Content: session.SystemPrompt, Timestamp: now},
		{Role: session.RoleAssistant, Content: session.Greeting, Timestamp: now},
		{Role: session.RoleUser, Content: "hmm", Timestamp: now},
	}

	answer := advisor.ContextualFallback("zzz qqq", nil, history)
	assert.Contains(t, followUps, answer)
}

func TestContextualFallbackWithoutAssistantTurn(t *testing.T) {
	advisor := pinnedAdvisor()
	history := []session.Message{
		{Role: session.RoleUser, Content: "hello"},
	}

	answer := advisor.ContextualFallback("zzz qqq", nil, history)
	assert.Contains(t, generalResponses, answer)
}

func TestContextualFallbackNeverEmpty(t *testing.T) {
	advisor := pinnedAdvisor()
	for i := 0; i < 50; i++ {
		answer := advisor.ContextualFallback("", nil, nil)
		require.NotEmpty(t, answer)
	}
}
