package server_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dogwalk/server"
	servermock "dogwalk/server/mock"
)

func TestStaticFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>dogs</h1>"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "js", "app.js"), []byte("let x = 1"), 0o600))

	game := servermock.NewMockGameAPI(gomock.NewController(t))
	handler := server.New(server.Config{WWWRoot: root}, game, nil).Handler()

	testCases := []struct {
		name        string
		method      string
		path        string
		status      int
		contentType string
		body        string
	}{
		{name: "root serves index", method: http.MethodGet, path: "/", status: http.StatusOK, contentType: "text/html; charset=utf-8", body: "<h1>dogs</h1>"},
		{name: "nested file", method: http.MethodGet, path: "/js/app.js", status: http.StatusOK, body: "let x = 1"},
		{name: "head", method: http.MethodHead, path: "/index.html", status: http.StatusOK, contentType: "text/html; charset=utf-8"},
		{name: "missing", method: http.MethodGet, path: "/nope.txt", status: http.StatusNotFound, contentType: "text/plain; charset=utf-8"},
		{name: "escape", method: http.MethodGet, path: "/../secret", status: http.StatusBadRequest, contentType: "application/json"},
		{name: "wrong method", method: http.MethodPost, path: "/index.html", status: http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, tc.status, rec.Code)
			if tc.contentType != "" {
				assert.Equal(t, tc.contentType, rec.Header().Get("Content-Type"))
			}
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}
}

func TestStaticDisabledWithoutRoot(t *testing.T) {
	game := servermock.NewMockGameAPI(gomock.NewController(t))
	rec := httptest.NewRecorder()

	server.New(server.Config{}, game, nil).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
