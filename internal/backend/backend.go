package backend

import (
	"context"

	"CareerGuide/internal/session"
)

// Adapter translates the uniform invoke contract into one provider's wire
// format. Implementations return an error for any transport failure, non-2xx
// status, malformed payload, or empty generated text; callers treat every
// error as "skip this provider", never as a fatal condition.
type Adapter interface {
	// Name returns the provider identifier used as provenance.
	Name() string

	// Invoke sends the conversation to the provider and returns the trimmed
	// generated text. The call is bounded by the adapter's own timeout in
	// addition to any deadline already on ctx.
	Invoke(ctx context.Context, history []session.Message, apiKey string) (string, error)
}

// chatMessages converts session history to the role/content maps used by
// OpenAI-compatible providers.
func chatMessages(history []session.Message) []map[string]string {
	msgs := make([]map[string]string, len(history))
	for i, msg := range history {
		msgs[i] = map[string]string{
			"role":    msg.Role,
			"content": msg.Content,
		}
	}
	return msgs
}
