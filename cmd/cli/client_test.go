package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientPostForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate-selenium", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "open the page", r.PostForm.Get("prompt"))

		w.Header().Set("X-Generation-Source", "model")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"script":"x","filename":"test_1.py"}`))
	}))
	defer srv.Close()

	client := newClient(srv.URL+"/", time.Second, false)
	resp, err := client.PostForm("/generate-selenium", map[string][]string{"prompt": {"open the page"}})

	require.NoError(t, err)
	assert.Equal(t, "model", resp.Header.Get("X-Generation-Source"))
	assert.Contains(t, string(resp.Body), "test_1.py")
}

func TestClientAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "json error", status: http.StatusUnprocessableEntity, body: `{"error":"prompt is required"}`, wantMessage: "prompt is required"},
		{name: "plain error", status: http.StatusBadGateway, body: "bad gateway", wantMessage: "bad gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newClient(srv.URL, time.Second, false).Get("/health")

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestReadInput(t *testing.T) {
	got, err := readInput([]string{"log", "in"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "log in", got)

	got, err = readInput([]string{"-"}, strings.NewReader("from stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin\n", got)
}

func TestResolveOutputPath(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, filepath.Join(dir, "test_1.py"), resolveOutputPath(dir, "test_1.py"))

	file := filepath.Join(dir, "mine.py")
	assert.Equal(t, file, resolveOutputPath(file, "test_1.py"))
}

func TestWriteOutputToDirectory(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeOutput(dir, "test_cases_1.feature", "Feature: x"))

	got, err := os.ReadFile(filepath.Join(dir, "test_cases_1.feature"))
	require.NoError(t, err)
	assert.Equal(t, "Feature: x", string(got))
}
