package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hairizuanbinnoorazman/qa-copilot/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterAttempt(t *testing.T) {
	errBoom := errors.New("connection refused")

	tests := []struct {
		name     string
		client   *StubClient
		wantOK   bool
		wantText string
		wantErr  error
	}{
		{
			name:     "text is returned verbatim",
			client:   &StubClient{Text: "```python\nprint('hi')\n```"},
			wantOK:   true,
			wantText: "```python\nprint('hi')\n```",
		},
		{
			name:    "client error becomes failed outcome",
			client:  &StubClient{Err: errBoom},
			wantErr: errBoom,
		},
		{
			name:    "empty text becomes failed outcome",
			client:  &StubClient{Text: ""},
			wantErr: ErrEmptyResponse,
		},
		{
			name:    "whitespace text becomes failed outcome",
			client:  &StubClient{Text: " \n\t "},
			wantErr: ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := logger.NewTestLogger()
			adapter := NewAdapter(tt.client, 0, log)

			out := adapter.Attempt(context.Background(), "compose this")

			assert.Equal(t, tt.wantOK, out.OK())
			assert.Equal(t, tt.wantText, out.Text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, out.Err, tt.wantErr)
				assert.True(t, log.HasMessage("warn", "generative-text call failed"))
			} else {
				assert.NoError(t, out.Err)
			}
			assert.Equal(t, []string{"compose this"}, tt.client.Prompts())
		})
	}
}

type slowClient struct{}

func (slowClient) Provider() string { return "slow" }

func (slowClient) Generate(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(5 * time.Second):
		return "too late", nil
	}
}

func TestAdapterAttemptTimeout(t *testing.T) {
	adapter := NewAdapter(slowClient{}, 20*time.Millisecond, logger.NewTestLogger())

	out := adapter.Attempt(context.Background(), "prompt")

	require.False(t, out.OK())
	assert.ErrorIs(t, out.Err, context.DeadlineExceeded)
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)

	reason := errors.New("disabled")
	_, err = Unavailable{Reason: reason}.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, reason)
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		cfg          Config
		wantProvider string
		wantErr      error
	}{
		{
			name:         "gemini without key is unavailable",
			cfg:          Config{Provider: "gemini"},
			wantProvider: "none",
		},
		{
			name:         "default provider without key is unavailable",
			cfg:          Config{},
			wantProvider: "none",
		},
		{
			name:         "openai without key is unavailable",
			cfg:          Config{Provider: "openai"},
			wantProvider: "none",
		},
		{
			name:         "openai with key",
			cfg:          Config{Provider: "OpenAI", APIKey: "sk-test", Model: "gpt-4o-mini"},
			wantProvider: "openai",
		},
		{
			name:         "none disables the service",
			cfg:          Config{Provider: "none", APIKey: "ignored"},
			wantProvider: "none",
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "mystery"},
			wantErr: ErrUnknownProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(ctx, tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantProvider, client.Provider())
		})
	}
}

func TestBedrockPayloadRoundTrip(t *testing.T) {
	payload, err := buildBedrockRequest("write a test", 512)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"anthropic_version":"bedrock-2023-05-31"`)
	assert.Contains(t, string(payload), `"max_tokens":512`)
	assert.Contains(t, string(payload), `"text":"write a test"`)

	text, err := parseBedrockResponse([]byte(`{"content":[{"type":"text","text":"Feature: "},{"type":"text","text":"Login"}],"stop_reason":"end_turn"}`))
	require.NoError(t, err)
	assert.Equal(t, "Feature: Login", text)

	_, err = parseBedrockResponse([]byte(`not json`))
	assert.Error(t, err)
}
