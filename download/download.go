// Package download writes caller-supplied text to the download directory and
// reads it back for streaming to the caller.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-copilot/logger"
	"github.com/hairizuanbinnoorazman/qa-copilot/storage"
)

var (
	// ErrEmptyFilename is returned when no filename is given.
	ErrEmptyFilename = errors.New("filename is required")

	// ErrInvalidFilename is returned when the filename is not a single plain path element.
	ErrInvalidFilename = errors.New("invalid filename")
)

// Writer persists download content through a BlobStorage backend.
type Writer struct {
	storage storage.BlobStorage
	logger  logger.Logger
}

// NewWriter creates a new download writer.
func NewWriter(store storage.BlobStorage, log logger.Logger) *Writer {
	return &Writer{
		storage: store,
		logger:  log,
	}
}

// ValidateFilename checks that name can be used as a file in the download directory.
func ValidateFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyFilename
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w %q: must not contain path separators", ErrInvalidFilename, name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w %q", ErrInvalidFilename, name)
	}
	return nil
}

// Write stores content under filename, replacing any existing file of that name.
func (w *Writer) Write(ctx context.Context, filename, content string) error {
	if err := ValidateFilename(filename); err != nil {
		return err
	}

	if err := w.storage.Upload(ctx, filename, strings.NewReader(content)); err != nil {
		if errors.Is(err, storage.ErrInvalidPath) {
			return fmt.Errorf("%w: %v", ErrInvalidFilename, err)
		}
		w.logger.Error(ctx, "failed to write download file", map[string]interface{}{
			"error":    err.Error(),
			"filename": filename,
		})
		return err
	}

	w.logger.Info(ctx, "download file written", map[string]interface{}{
		"filename": filename,
		"size":     len(content),
	})
	return nil
}

// Open returns a reader over the stored file. The caller must close it.
func (w *Writer) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}
	return w.storage.Download(ctx, filename)
}
