package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/hairizuanbinnoorazman/qa-copilot/download"
	"github.com/hairizuanbinnoorazman/qa-copilot/logger"
	"github.com/hairizuanbinnoorazman/qa-copilot/metrics"
)

// DownloadHandler writes caller content to the download directory and streams it back.
type DownloadHandler struct {
	writer *download.Writer
	logger logger.Logger
}

// NewDownloadHandler creates a new download handler.
func NewDownloadHandler(writer *download.Writer, log logger.Logger) *DownloadHandler {
	return &DownloadHandler{
		writer: writer,
		logger: log,
	}
}

// Download handles the download-script form post.
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	content, ok := requiredFormValue(w, r, "script_content")
	if !ok {
		return
	}
	filename, ok := requiredFormValue(w, r, "filename")
	if !ok {
		return
	}

	if err := h.writer.Write(ctx, filename, content); err != nil {
		h.respondWriteError(w, r, err)
		return
	}

	reader, err := h.writer.Open(ctx, filename)
	if err != nil {
		h.respondWriteError(w, r, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, reader); err != nil {
		// Headers are already sent; the client sees a truncated body.
		metrics.IncDownload("error")
		h.logger.Error(ctx, "failed to stream download", map[string]interface{}{
			"error":    err.Error(),
			"filename": filename,
		})
		return
	}
	metrics.IncDownload("ok")
}

func (h *DownloadHandler) respondWriteError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, download.ErrInvalidFilename) || errors.Is(err, download.ErrEmptyFilename) {
		metrics.IncDownload("rejected")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics.IncDownload("error")
	metrics.IncError("download", "internal")
	h.logger.Error(r.Context(), "download failed", map[string]interface{}{
		"error": err.Error(),
	})
	respondError(w, http.StatusInternalServerError, err.Error())
}
