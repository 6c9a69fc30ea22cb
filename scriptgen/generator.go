package scriptgen

import (
	"context"

	"github.com/hairizuanbinnoorazman/qa-copilot/llm"
	"github.com/hairizuanbinnoorazman/qa-copilot/logger"
	"github.com/hairizuanbinnoorazman/qa-copilot/metrics"
)

// ScriptGenerator defines the interface for generating automation scripts.
type ScriptGenerator interface {
	// Generate creates a Selenium script for req. It fails only for invalid requests.
	Generate(ctx context.Context, req Request) (*Script, error)
}

// Generator asks the model for a script once and falls back to a static template
// when the attempt fails.
type Generator struct {
	model  *llm.Adapter
	logger logger.Logger
}

// NewGenerator creates a new script generator.
func NewGenerator(model *llm.Adapter, log logger.Logger) *Generator {
	return &Generator{
		model:  model,
		logger: log,
	}
}

// Generate implements ScriptGenerator.
func (g *Generator) Generate(ctx context.Context, req Request) (*Script, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	outcome := g.model.Attempt(ctx, BuildPrompt(req))
	if outcome.OK() {
		metrics.IncGeneration("script", string(llm.SourceModel))
		g.logger.Info(ctx, "script generated by model", map[string]interface{}{
			"browser":  req.Browser,
			"language": req.Language,
			"provider": g.model.Provider(),
		})
		return &Script{
			Content:  outcome.Text,
			Language: req.Language,
			Source:   llm.SourceModel,
		}, nil
	}

	metrics.IncGeneration("script", string(llm.SourceFallback))
	g.logger.Info(ctx, "script generated from template", map[string]interface{}{
		"browser":  req.Browser,
		"language": req.Language,
		"reason":   outcome.Err.Error(),
	})
	return &Script{
		Content:        FallbackScript(req),
		Language:       req.Language,
		Source:         llm.SourceFallback,
		FallbackReason: outcome.Err,
	}, nil
}
