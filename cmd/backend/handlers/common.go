package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// maxFormMemory caps the multipart form bytes held in memory; larger parts spill to disk.
const maxFormMemory = 10 << 20

// timestampLayout formats the timestamp embedded in generated filenames (YYYYMMDD_HHMMSS).
const timestampLayout = "20060102_150405"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// parseForm parses a urlencoded or multipart request body.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return fmt.Errorf("invalid form body: %w", err)
	}
	return nil
}

// requiredFormValue returns the named body field. It writes a 422 response and
// returns false when the field is missing or blank.
func requiredFormValue(w http.ResponseWriter, r *http.Request, field string) (string, bool) {
	value := r.PostFormValue(field)
	if strings.TrimSpace(value) == "" {
		respondError(w, http.StatusUnprocessableEntity, field+" is required")
		return "", false
	}
	return value, true
}
