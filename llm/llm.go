package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hairizuanbinnoorazman/qa-copilot/logger"
	"github.com/hairizuanbinnoorazman/qa-copilot/metrics"
)

var (
	// ErrNotConfigured is returned when no usable credential is configured for the provider.
	ErrNotConfigured = errors.New("generative-text service not configured")

	// ErrEmptyResponse is returned when the service replied with no text.
	ErrEmptyResponse = errors.New("empty response from generative-text service")

	// ErrUnknownProvider is returned when the configured provider is not supported.
	ErrUnknownProvider = errors.New("unknown llm provider")
)

// Source records where a generated artifact came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Client sends one composed text instruction to a generative-text service
// and returns its text reply.
// Implementations can use different backends (Gemini, AWS Bedrock, OpenAI, etc.)
type Client interface {
	// Generate returns the model's reply to prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// Provider returns a short provider name used in logs and metrics.
	Provider() string
}

// Outcome is the result of a single attempt against the service.
// Exactly one of Text and Err is meaningful: Err is nil iff Text is non-empty.
type Outcome struct {
	Text     string
	Err      error
	Duration time.Duration
}

// OK reports whether the attempt produced usable text.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Adapter wraps a Client and turns every call into an Outcome.
// It makes exactly one call per Attempt; there are no retries.
type Adapter struct {
	client  Client
	timeout time.Duration
	logger  logger.Logger
}

// NewAdapter creates an adapter. A zero timeout leaves the call bounded
// only by ctx and the client's own defaults.
func NewAdapter(client Client, timeout time.Duration, log logger.Logger) *Adapter {
	return &Adapter{
		client:  client,
		timeout: timeout,
		logger:  log,
	}
}

// Provider returns the wrapped client's provider name.
func (a *Adapter) Provider() string {
	return a.client.Provider()
}

// Attempt performs one call and classifies the reply.
func (a *Adapter) Attempt(ctx context.Context, prompt string) Outcome {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := a.client.Generate(ctx, prompt)
	elapsed := time.Since(start)

	result := "ok"
	switch {
	case err != nil:
		result = "error"
	case strings.TrimSpace(text) == "":
		result = "empty"
		err = ErrEmptyResponse
	}
	metrics.ObserveLLMAttempt(a.client.Provider(), result, elapsed)

	if err != nil {
		a.logger.Warn(ctx, "generative-text call failed", map[string]interface{}{
			"provider":    a.client.Provider(),
			"error":       err.Error(),
			"duration_ms": elapsed.Milliseconds(),
		})
		return Outcome{Err: err, Duration: elapsed}
	}

	a.logger.Debug(ctx, "generative-text call completed", map[string]interface{}{
		"provider":    a.client.Provider(),
		"chars":       len(text),
		"duration_ms": elapsed.Milliseconds(),
	})
	return Outcome{Text: text, Duration: elapsed}
}
