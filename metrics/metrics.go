package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Generations
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qacopilot_generations_total",
			Help: "Generated artifacts by generator and source",
		},
		[]string{"generator", "source"}, // generator: script|bdd, source: model|fallback
	)

	// LLM
	LLMAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qacopilot_llm_attempts_total",
			Help: "Calls to the generative-text service by provider and result",
		},
		[]string{"provider", "result"}, // result: ok|error|empty
	)
	LLMDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qacopilot_llm_duration_seconds",
			Help:    "Latency of calls to the generative-text service",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 9), // 0.25s..64s
		},
		[]string{"provider"},
	)

	// Downloads
	Downloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qacopilot_downloads_total",
			Help: "Download requests by result",
		},
		[]string{"result"}, // result: ok|rejected|error
	)

	// Errors
	Errors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qacopilot_errors_total",
			Help: "Errors encountered in components",
		},
		[]string{"component", "type"},
	)
)

func init() {
	prometheus.MustRegister(
		Generations,
		LLMAttempts,
		LLMDurationSeconds,
		Downloads,
		Errors,
	)
}

// Handler returns the HTTP handler exposing the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Generations
func IncGeneration(generator, source string) {
	Generations.WithLabelValues(generator, source).Inc()
}

// LLM
func ObserveLLMAttempt(provider, result string, d time.Duration) {
	LLMAttempts.WithLabelValues(provider, result).Inc()
	LLMDurationSeconds.WithLabelValues(provider).Observe(d.Seconds())
}

// Downloads
func IncDownload(result string) {
	Downloads.WithLabelValues(result).Inc()
}

// Errors
func IncError(component, typ string) {
	Errors.WithLabelValues(component, typ).Inc()
}
