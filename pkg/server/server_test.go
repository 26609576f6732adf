package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dirview/dirview/pkg/config"
	"github.com/dirview/dirview/pkg/filesystem"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestEcho(t *testing.T, modify func(cfg *config.Config)) *echo.Echo {
	t.Helper()

	rootDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(rootDir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(rootDir, "sub"), 0755))

	resourcesDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(resourcesDir, "style.css"), []byte("body {}"), 0644))

	cfg := config.NewForTest()
	cfg.RootDir = rootDir
	cfg.ResourcesDir = resourcesDir
	if modify != nil {
		modify(cfg)
	}

	svc, err := filesystem.NewService(cfg.RootDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	e, err := newEcho(cfg, svc)
	require.NoError(t, err)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNew(t *testing.T) {
	t.Parallel()

	cfg := config.NewForTest()
	cfg.RootDir = t.TempDir()
	cfg.ServerPort = 4321
	svc, err := filesystem.NewService(cfg.RootDir)
	require.NoError(t, err)
	defer svc.Close()

	srv, err := New(cfg, svc)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:4321", srv.Addr)
	assert.NotZero(t, srv.ReadHeaderTimeout)
}

func TestRoutes(t *testing.T) {
	t.Parallel()
	e := setupTestEcho(t, nil)

	tests := []struct {
		target   string
		status   int
		contains string
	}{
		{"/", http.StatusOK, "a.txt"},
		{"/files?path=sub", http.StatusOK, "This directory is empty."},
		{"/foo", http.StatusOK, "<p>foo</p>"},
		{"/video", http.StatusOK, "/resources/video.mp4"},
		{"/resources/style.css", http.StatusOK, "body {}"},
		{"/health", http.StatusOK, ""},
		{"/nope", http.StatusNotFound, `"code":"not_found"`},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(tt *testing.T) {
			rec := get(e, tc.target)
			assert.Equal(tt, tc.status, rec.Code)
			assert.Contains(tt, rec.Body.String(), tc.contains)
		})
	}
}

func TestRequestTimeout(t *testing.T) {
	t.Parallel()
	e := setupTestEcho(t, func(cfg *config.Config) {
		cfg.RequestTimeout = time.Nanosecond
	})

	rec := get(e, "/files")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"request_timeout"`)
}
