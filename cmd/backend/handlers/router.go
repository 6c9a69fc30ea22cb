package handlers

import (
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hairizuanbinnoorazman/qa-copilot/logger"
	"github.com/hairizuanbinnoorazman/qa-copilot/metrics"
	"github.com/hairizuanbinnoorazman/qa-copilot/web"
)

// RouterConfig controls the optional parts of the HTTP surface.
type RouterConfig struct {
	MetricsEnabled bool
	AllowedOrigins []string
}

// NewRouter builds the application router with its middleware chain.
func NewRouter(
	cfg RouterConfig,
	index *IndexHandler,
	generate *GenerateHandler,
	dl *DownloadHandler,
	log logger.Logger,
) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)
	router.Use(NewLoggingMiddleware(log).Handler)

	router.HandleFunc("/", index.Index).Methods("GET")
	router.HandleFunc("/health", HealthHandler).Methods("GET")
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", web.StaticHandler())).Methods("GET")

	router.HandleFunc("/generate-selenium", generate.GenerateSelenium).Methods("POST")
	router.HandleFunc("/generate-bdd", generate.GenerateBDD).Methods("POST")
	router.HandleFunc("/download-script", dl.Download).Methods("POST")

	if cfg.MetricsEnabled {
		router.Handle("/metrics", metrics.Handler()).Methods("GET")
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(origins),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
		gorillahandlers.ExposedHeaders([]string{RequestIDHeader, SourceHeader, "Content-Disposition"}),
	)

	recovery := gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(recoveryLogger{logger: log}),
		gorillahandlers.PrintRecoveryStack(false),
	)

	return recovery(cors(router))
}
