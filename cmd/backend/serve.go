package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hairizuanbinnoorazman/qa-copilot/bddgen"
	"github.com/hairizuanbinnoorazman/qa-copilot/cmd/backend/handlers"
	"github.com/hairizuanbinnoorazman/qa-copilot/download"
	"github.com/hairizuanbinnoorazman/qa-copilot/llm"
	"github.com/hairizuanbinnoorazman/qa-copilot/logger"
	"github.com/hairizuanbinnoorazman/qa-copilot/scriptgen"
	"github.com/hairizuanbinnoorazman/qa-copilot/storage"
	"github.com/hairizuanbinnoorazman/qa-copilot/web"
	"github.com/spf13/cobra"
)

var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServer,
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLogrusLogger(cfg.Log.Level, cfg.Log.Format)
	log.Info(ctx, "starting server", map[string]interface{}{
		"version": Version,
		"commit":  Commit,
		"date":    BuildDate,
	})

	router, err := buildRouter(ctx, cfg, log)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info(ctx, "server listening", map[string]interface{}{
			"address": addr,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info(ctx, "server stopped", nil)
	return nil
}

// buildRouter wires the model client, generators, storage and handlers.
func buildRouter(ctx context.Context, cfg *Config, log logger.Logger) (http.Handler, error) {
	client, err := newModelClient(ctx, cfg.LLM, log)
	if err != nil {
		return nil, err
	}
	model := llm.NewAdapter(client, cfg.LLM.Timeout, log)

	store, err := storage.NewBlobStorage(ctx, storage.Config{
		Type:     cfg.Storage.Type,
		BaseDir:  cfg.Storage.BaseDir,
		S3Bucket: cfg.Storage.S3Bucket,
		S3Region: cfg.Storage.S3Region,
		S3Prefix: cfg.Storage.S3Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info(ctx, "storage initialized", map[string]interface{}{
		"type":     cfg.Storage.Type,
		"base_dir": cfg.Storage.BaseDir,
	})

	pages, err := web.NewPages()
	if err != nil {
		return nil, err
	}

	return handlers.NewRouter(
		handlers.RouterConfig{
			MetricsEnabled: cfg.Metrics.Enabled,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		},
		handlers.NewIndexHandler(pages, Version, log),
		handlers.NewGenerateHandler(
			scriptgen.NewGenerator(model, log),
			bddgen.NewGenerator(model, log),
			time.Now,
			log,
		),
		handlers.NewDownloadHandler(download.NewWriter(store, log), log),
		log,
	), nil
}

// newModelClient builds the configured provider. Only an unknown provider is fatal;
// any other setup failure leaves the server running on templates.
func newModelClient(ctx context.Context, cfg LLMConfig, log logger.Logger) (llm.Client, error) {
	client, err := llm.NewClient(ctx, llm.Config{
		Provider:         cfg.Provider,
		APIKey:           cfg.APIKey,
		Model:            cfg.Model,
		BaseURL:          cfg.BaseURL,
		MaxTokens:        cfg.MaxTokens,
		Timeout:          cfg.Timeout,
		BedrockRegion:    cfg.BedrockRegion,
		BedrockAccessKey: cfg.BedrockAccessKey,
		BedrockSecretKey: cfg.BedrockSecretKey,
	})
	if errors.Is(err, llm.ErrUnknownProvider) {
		return nil, fmt.Errorf("failed to initialize model client: %w", err)
	}
	if err != nil {
		log.Warn(ctx, "model client unavailable, using templates", map[string]interface{}{
			"provider": cfg.Provider,
			"error":    err.Error(),
		})
		return llm.Unavailable{Reason: err}, nil
	}

	if u, ok := client.(llm.Unavailable); ok {
		log.Warn(ctx, "model client not configured, using templates", map[string]interface{}{
			"provider": cfg.Provider,
			"reason":   u.Reason.Error(),
		})
	} else {
		log.Info(ctx, "model client initialized", map[string]interface{}{
			"provider": client.Provider(),
			"model":    cfg.Model,
		})
	}
	return client, nil
}
