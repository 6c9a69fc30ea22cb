package handlers

import (
	"bytes"
	"net/http"

	"github.com/hairizuanbinnoorazman/qa-copilot/logger"
	"github.com/hairizuanbinnoorazman/qa-copilot/web"
)

// IndexHandler renders the single-page UI.
type IndexHandler struct {
	pages  *web.Pages
	data   web.PageData
	logger  logger.Logger
}

// NewIndexHandler creates a new index page handler.
func NewIndexHandler(pages *web.Pages, version string, log logger.Logger) *IndexHandler {
	return &IndexHandler{
		pages:  pages,
		data:   web.PageData{Title: "QA Copilot AI", Version: version},
		logger: log,
	}
}

// Index handles requests for the home page.
func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.pages.RenderIndex(&buf, h.data); err != nil {
		h.logger.Error(r.Context(), "failed to render index page", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
