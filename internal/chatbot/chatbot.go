package chatbot

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"CareerGuide/internal/backend"
	"CareerGuide/internal/chatlog"
	"CareerGuide/internal/config"
	"CareerGuide/internal/dataset"
	"CareerGuide/internal/session"
	"CareerGuide/internal/telemetry"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// SourceDataset is the provenance tag for answers produced locally, either
// by the dataset fast path or the terminal contextual fallback.
const SourceDataset = "dataset"

const (
	// providerAcceptMin is the minimum trimmed answer length a remote
	// provider must produce for the cascade to stop.
	providerAcceptMin = 15

	// fastPathAcceptMin is the minimum dataset answer length accepted by the
	// dataset-first fast path.
	fastPathAcceptMin = 10
)

// Counsellor orchestrates the answer cascade: optional dataset fast path,
// remote providers in fixed priority order, then the contextual fallback.
// It is a total function over user input; Respond never fails.
type Counsellor struct {
	config      config.Config
	store       *session.Store
	loadDataset func() []dataset.Entry
	advisor     *dataset.Advisor
	adapters    []backend.Adapter
	loadKeys    func() map[string]string
	chatLog     *chatlog.Log
	logger      *slog.Logger
	tracer      trace.Tracer
	meter       metric.Meter
	now         func() time.Time
	cleanup     func()
}

// NewCounsellor creates a fully wired Counsellor instance
func NewCounsellor(cfg config.Config) (*Counsellor, error) {
	logger, err := telemetry.InitLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := context.Background()
	tracer, meter, cleanup, err := telemetry.InitTelemetry(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	chatLog, err := chatlog.Open(cfg.ChatLogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chat log: %w", err)
	}

	if cfg.Debug {
		logger.Info("Debug mode enabled")
	}

	httpClient := &http.Client{Timeout: 60 * time.Second}

	return &Counsellor{
		config:      cfg,
		store:       session.NewStore(),
		loadDataset: func() []dataset.Entry { return dataset.Load(cfg.DatasetPath, logger) },
		advisor:     dataset.NewAdvisor(rand.New(rand.NewSource(time.Now().UnixNano()))),
		adapters: []backend.Adapter{
			backend.NewDeepSeek(httpClient),
			backend.NewGemini(httpClient),
			backend.NewGroq(httpClient),
			backend.NewHuggingFace(httpClient),
		},
		loadKeys: func() map[string]string { return config.LoadKeys(cfg.KeysPath, logger) },
		chatLog:  chatLog,
		logger:   logger,
		tracer:   tracer,
		meter:    meter,
		now:      time.Now,
		cleanup:  cleanup,
	}, nil
}

// Respond answers one user message. It always returns a non-empty answer and
// the provenance tag of the stage that produced it: a provider name, or
// "dataset" for locally generated answers. The user and assistant turns are
// each appended to the conversation exactly once.
func (c *Counsellor) Respond(ctx context.Context, userID, message string) (string, string) {
	ctx, span := c.tracer.Start(ctx, "counsellor_respond")
	defer span.End()

	// Always load the dataset fresh so edits are picked up without restarts
	pairs := c.loadDataset()

	if c.config.DatasetFirst {
		if answer, ok := dataset.Match(message, pairs); ok && len(strings.TrimSpace(answer)) > fastPathAcceptMin {
			c.logger.Info("dataset fast path answered", "user_id", userID)
			c.store.Append(userID, session.RoleUser, message)
			c.store.Append(userID, session.RoleAssistant, answer)
			c.recordExchange(userID, message, answer, SourceDataset)
			return answer, SourceDataset
		}
	}

	// The user turn goes into history before provider attempts so that the
	// providers and the fallback both see it.
	c.store.Append(userID, session.RoleUser, message)
	history := c.store.GetOrCreate(userID)

	// A blank message has nothing for a provider to work with; it drops
	// straight through to the contextual fallback.
	if strings.TrimSpace(message) != "" {
		keys := c.loadKeys()
		for _, adapter := range c.adapters {
			apiKey := keys[adapter.Name()]
			if apiKey == "" {
				c.logger.Debug("provider skipped, no credential", "provider", adapter.Name())
				continue
			}
			if ctx.Err() != nil {
				c.logger.Warn("caller deadline expired, abandoning provider cascade", "error", ctx.Err())
				break
			}

			answer, err := c.invoke(ctx, adapter, history, apiKey)
			if err != nil {
				c.logger.Warn("provider failed", "provider", adapter.Name(), "error", err)
				continue
			}
			if len(strings.TrimSpace(answer)) <= providerAcceptMin {
				c.logger.Warn("provider answer below acceptance threshold", "provider", adapter.Name(), "length", len(answer))
				continue
			}

			c.logger.Info("provider answered", "provider", adapter.Name(), "user_id", userID)
			c.store.Append(userID, session.RoleAssistant, answer)
			c.recordExchange(userID, message, answer, adapter.Name())
			return answer, adapter.Name()
		}
	}

	answer := c.advisor.ContextualFallback(message, pairs, history)
	c.logger.Info("contextual fallback answered", "user_id", userID)
	c.store.Append(userID, session.RoleAssistant, answer)
	c.recordExchange(userID, message, answer, SourceDataset)
	return answer, SourceDataset
}

// invoke runs one provider attempt inside its own span and records the
// request duration.
func (c *Counsellor) invoke(ctx context.Context, adapter backend.Adapter, history []session.Message, apiKey string) (string, error) {
	ctx, span := c.tracer.Start(ctx, adapter.Name()+"_api_call")
	defer span.End()

	start := time.Now()
	answer, err := adapter.Invoke(ctx, history, apiKey)
	duration := time.Since(start)

	histogram, herr := c.meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("HTTP request duration in milliseconds"),
	)
	if herr == nil {
		histogram.Record(ctx, float64(duration.Milliseconds()))
	}

	if err != nil {
		counter, cerr := c.meter.Int64Counter(
			"llm.provider.failures",
			metric.WithDescription("Failed provider invocations"),
		)
		if cerr == nil {
			counter.Add(ctx, 1)
		}
		return "", err
	}
	return answer, nil
}

// recordExchange writes the completed turn to the sqlite exchange log
// without blocking the response path.
func (c *Counsellor) recordExchange(userID, question, answer, source string) {
	if c.chatLog == nil {
		return
	}
	ex := chatlog.Exchange{
		UserID:    userID,
		Question:  question,
		Answer:    answer,
		Source:    source,
		CreatedAt: c.now(),
	}
	go func() {
		if err := c.chatLog.Record(ex); err != nil {
			c.logger.Error("failed to record exchange", "error", err)
		}
	}()
}

// History returns the user's conversation excluding system turns.
func (c *Counsellor) History(userID string) []session.Message {
	return c.store.History(userID)
}

// ClearHistory removes the user's conversation. Safe to call repeatedly.
func (c *Counsellor) ClearHistory(userID string) {
	c.store.Clear(userID)
	c.logger.Info("cleared conversation", "user_id", userID)
}

// Close flushes telemetry and closes the exchange log.
func (c *Counsellor) Close() error {
	if c.cleanup != nil {
		c.cleanup()
	}
	if c.chatLog != nil {
		return c.chatLog.Close()
	}
	return nil
}
