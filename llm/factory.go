package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Config holds generative-text service configuration.
type Config struct {
	Provider  string // "gemini", "bedrock", "openai" or "none"
	APIKey    string
	Model     string
	BaseURL   string // openai only
	MaxTokens int
	Timeout   time.Duration

	BedrockRegion    string
	BedrockAccessKey string
	BedrockSecretKey string
}

// NewClient creates a Client based on configuration.
// A missing API key is not an error: the returned client is Unavailable and every
// call fails, so generation degrades to templates.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "gemini":
		if cfg.APIKey == "" {
			return Unavailable{Reason: fmt.Errorf("%w: gemini api key is empty", ErrNotConfigured)}, nil
		}
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)

	case "openai":
		if cfg.APIKey == "" {
			return Unavailable{Reason: fmt.Errorf("%w: openai api key is empty", ErrNotConfigured)}, nil
		}
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens)

	case "bedrock":
		if cfg.BedrockRegion == "" {
			return nil, fmt.Errorf("bedrock region is required")
		}
		return NewBedrockClient(ctx, cfg.BedrockRegion, cfg.Model, cfg.MaxTokens, cfg.BedrockAccessKey, cfg.BedrockSecretKey)

	case "none":
		return Unavailable{Reason: fmt.Errorf("%w: provider disabled", ErrNotConfigured)}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
