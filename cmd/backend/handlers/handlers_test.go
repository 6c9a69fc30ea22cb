package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/hairizuanbinnoorazman/qa-copilot/bddgen"
	"github.com/hairizuanbinnoorazman/qa-copilot/download"
	"github.com/hairizuanbinnoorazman/qa-copilot/llm"
	"github.com/hairizuanbinnoorazman/qa-copilot/logger"
	"github.com/hairizuanbinnoorazman/qa-copilot/scriptgen"
	"github.com/hairizuanbinnoorazman/qa-copilot/storage"
	"github.com/hairizuanbinnoorazman/qa-copilot/web"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
}

type testServer struct {
	handler http.Handler
	model   *llm.StubClient
	baseDir string
	logger  *logger.TestLogger
}

func newTestServer(t *testing.T, model *llm.StubClient) *testServer {
	t.Helper()

	log := logger.NewTestLogger()
	adapter := llm.NewAdapter(model, 0, log)

	baseDir := t.TempDir()
	store, err := storage.NewLocalStorage(baseDir)
	require.NoError(t, err)

	pages, err := web.NewPages()
	require.NoError(t, err)

	router := NewRouter(
		RouterConfig{MetricsEnabled: true},
		NewIndexHandler(pages, "test", log),
		NewGenerateHandler(scriptgen.NewGenerator(adapter, log), bddgen.NewGenerator(adapter, log), fixedNow, log),
		NewDownloadHandler(download.NewWriter(store, log), log),
		log,
	)

	return &testServer{handler: router, model: model, baseDir: baseDir, logger: log}
}

func (s *testServer) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) postMultipart(t *testing.T, path string, values map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range values {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}
