package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hairizuanbinnoorazman/qa-copilot/bddgen"
	"github.com/hairizuanbinnoorazman/qa-copilot/logger"
	"github.com/hairizuanbinnoorazman/qa-copilot/metrics"
	"github.com/hairizuanbinnoorazman/qa-copilot/scriptgen"
)

// SourceHeader reports whether generated content came from the model or a template.
const SourceHeader = "X-Generation-Source"

// GenerateScriptResponse is returned by the script generation endpoint.
type GenerateScriptResponse struct {
	Success  bool   `json:"success"`
	Script   string `json:"script"`
	Filename string `json:"filename"`
}

// GenerateBDDResponse is returned by the BDD generation endpoint.
type GenerateBDDResponse struct {
	Success  bool   `json:"success"`
	BDDCases string `json:"bdd_cases"`
	Filename string `json:"filename"`
}

// GenerateHandler handles script and BDD generation requests.
type GenerateHandler struct {
	scripts scriptgen.ScriptGenerator
	specs   bddgen.SpecGenerator
	now     func() time.Time
	logger  logger.Logger
}

// NewGenerateHandler creates a new generation handler. A nil now uses time.Now.
func NewGenerateHandler(
	scripts scriptgen.ScriptGenerator,
	specs bddgen.SpecGenerator,
	now func() time.Time,
	log logger.Logger,
) *GenerateHandler {
	if now == nil {
		now = time.Now
	}
	return &GenerateHandler{
		scripts: scripts,
		specs:   specs,
		now:     now,
		logger:  log,
	}
}

// GenerateSelenium handles generating a Selenium script from a scenario description.
func (h *GenerateHandler) GenerateSelenium(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	prompt, ok := requiredFormValue(w, r, "prompt")
	if !ok {
		return
	}

	browser, err := scriptgen.ParseBrowser(r.PostFormValue("browser"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	language, err := scriptgen.ParseLanguage(r.PostFormValue("language"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	script, err := h.scripts.Generate(ctx, scriptgen.Request{
		Prompt:   prompt,
		Browser:  browser,
		Language: language,
	})
	if err != nil {
		h.respondGenerateError(w, r, "script", err)
		return
	}

	w.Header().Set(SourceHeader, string(script.Source))
	respondJSON(w, http.StatusOK, GenerateScriptResponse{
		Success:  true,
		Script:   script.Content,
		Filename: fmt.Sprintf("test_%s.%s", h.now().Format(timestampLayout), language.Extension()),
	})
}

// GenerateBDD handles generating BDD test cases from a user story.
func (h *GenerateHandler) GenerateBDD(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	userStory, ok := requiredFormValue(w, r, "user_story")
	if !ok {
		return
	}

	style, err := bddgen.ParseFormatStyle(r.PostFormValue("format_style"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	spec, err := h.specs.Generate(ctx, bddgen.Request{
		UserStory:   userStory,
		FormatStyle: style,
	})
	if err != nil {
		h.respondGenerateError(w, r, "bdd", err)
		return
	}

	w.Header().Set(SourceHeader, string(spec.Source))
	respondJSON(w, http.StatusOK, GenerateBDDResponse{
		Success:  true,
		BDDCases: spec.Content,
		Filename: fmt.Sprintf("test_cases_%s.%s", h.now().Format(timestampLayout), bddgen.FileExtension),
	})
}

func (h *GenerateHandler) respondGenerateError(w http.ResponseWriter, r *http.Request, generator string, err error) {
	switch {
	case errors.Is(err, scriptgen.ErrEmptyPrompt), errors.Is(err, bddgen.ErrEmptyUserStory):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, scriptgen.ErrInvalidBrowser),
		errors.Is(err, scriptgen.ErrInvalidLanguage),
		errors.Is(err, bddgen.ErrInvalidFormatStyle):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		metrics.IncError(generator, "internal")
		h.logger.Error(r.Context(), "generation failed", map[string]interface{}{
			"error":     err.Error(),
			"generator": generator,
		})
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
