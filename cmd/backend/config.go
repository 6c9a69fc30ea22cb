package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Storage StorageConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// LLMConfig holds generative-text provider configuration.
type LLMConfig struct {
	Provider  string // "gemini", "bedrock", "openai" or "none"
	APIKey    string
	Model     string // Empty selects the provider default
	BaseURL   string // For openai: compatible endpoint
	MaxTokens int
	Timeout   time.Duration // 0 means no deadline beyond the client's own

	BedrockRegion    string
	BedrockAccessKey string
	BedrockSecretKey string
}

// StorageConfig holds download storage configuration.
type StorageConfig struct {
	Type     string // "local" or "s3"
	BaseDir  string // For local: "downloads"
	S3Bucket string
	S3Region string
	S3Prefix string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

// MetricsConfig holds Prometheus metrics configuration.
type MetricsConfig struct {
	Enabled bool
}

// LoadConfig loads configuration from a .env file, the config file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_tokens", 4096)
	v.SetDefault("llm.timeout", "0s")
	v.SetDefault("llm.bedrock_region", "us-east-1")
	v.SetDefault("llm.bedrock_access_key", "")
	v.SetDefault("llm.bedrock_secret_key", "")

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.base_dir", "downloads")
	v.SetDefault("storage.s3_bucket", "")
	v.SetDefault("storage.s3_region", "us-east-1")
	v.SetDefault("storage.s3_prefix", "downloads")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("metrics.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config

	config.Server.Host = v.GetString("server.host")
	config.Server.Port = v.GetInt("server.port")
	config.Server.ReadTimeout = v.GetDuration("server.read_timeout")
	config.Server.WriteTimeout = v.GetDuration("server.write_timeout")
	config.Server.AllowedOrigins = v.GetStringSlice("server.allowed_origins")

	config.LLM.Provider = strings.ToLower(v.GetString("llm.provider"))
	config.LLM.APIKey = v.GetString("llm.api_key")
	config.LLM.Model = v.GetString("llm.model")
	config.LLM.BaseURL = v.GetString("llm.base_url")
	config.LLM.MaxTokens = v.GetInt("llm.max_tokens")
	config.LLM.Timeout = v.GetDuration("llm.timeout")
	config.LLM.BedrockRegion = v.GetString("llm.bedrock_region")
	config.LLM.BedrockAccessKey = v.GetString("llm.bedrock_access_key")
	config.LLM.BedrockSecretKey = v.GetString("llm.bedrock_secret_key")

	// Provider-specific key variables are accepted when no generic key is set.
	if config.LLM.APIKey == "" {
		config.LLM.APIKey = providerAPIKey(v, config.LLM.Provider)
	}

	config.Storage.Type = v.GetString("storage.type")
	config.Storage.BaseDir = v.GetString("storage.base_dir")
	config.Storage.S3Bucket = v.GetString("storage.s3_bucket")
	config.Storage.S3Region = v.GetString("storage.s3_region")
	config.Storage.S3Prefix = v.GetString("storage.s3_prefix")

	config.Log.Level = v.GetString("log.level")
	config.Log.Format = v.GetString("log.format")

	config.Metrics.Enabled = v.GetBool("metrics.enabled")

	return &config, nil
}

func providerAPIKey(v *viper.Viper, provider string) string {
	switch provider {
	case "", "gemini":
		v.BindEnv("google_ai_api_key", "GOOGLE_AI_API_KEY")
		return v.GetString("google_ai_api_key")
	case "openai":
		v.BindEnv("openai_api_key", "OPENAI_API_KEY")
		return v.GetString("openai_api_key")
	default:
		return ""
	}
}
