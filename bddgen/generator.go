package bddgen

import (
	"context"

	"github.com/hairizuanbinnoorazman/qa-copilot/llm"
	"github.com/hairizuanbinnoorazman/qa-copilot/logger"
	"github.com/hairizuanbinnoorazman/qa-copilot/metrics"
)

// SpecGenerator defines the interface for generating BDD specifications.
type SpecGenerator interface {
	// Generate creates a specification for req. It fails only for invalid requests.
	Generate(ctx context.Context, req Request) (*Spec, error)
}

// Generator asks the model once and falls back to a static template on failure.
type Generator struct {
	model  *llm.Adapter
	logger logger.Logger
}

// NewGenerator creates a new specification generator.
func NewGenerator(model *llm.Adapter, log logger.Logger) *Generator {
	return &Generator{
		model:  model,
		logger: log,
	}
}

// Generate implements SpecGenerator.
func (g *Generator) Generate(ctx context.Context, req Request) (*Spec, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	outcome := g.model.Attempt(ctx, BuildPrompt(req))
	if outcome.OK() {
		metrics.IncGeneration("bdd", string(llm.SourceModel))
		g.logger.Info(ctx, "bdd cases generated by model", map[string]interface{}{
			"format_style": req.FormatStyle,
			"provider":     g.model.Provider(),
		})
		return &Spec{
			Content:     outcome.Text,
			FormatStyle: req.FormatStyle,
			Source:      llm.SourceModel,
		}, nil
	}

	metrics.IncGeneration("bdd", string(llm.SourceFallback))
	g.logger.Info(ctx, "bdd cases generated from template", map[string]interface{}{
		"format_style": req.FormatStyle,
		"reason":       outcome.Err.Error(),
	})
	return &Spec{
		Content:        FallbackSpec(req),
		FormatStyle:    req.FormatStyle,
		Source:         llm.SourceFallback,
		FallbackReason: outcome.Err,
	}, nil
}
