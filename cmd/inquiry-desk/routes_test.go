package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/inquiry-desk/internal/catalog"
	"github.com/noah-isme/inquiry-desk/internal/repository"
	"github.com/noah-isme/inquiry-desk/pkg/config"
	"github.com/noah-isme/inquiry-desk/pkg/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:       config.EnvDevelopment,
		APIPrefix: "/api/v1",
		Auth:      config.AuthConfig{Password: "letmein", JWTSecret: "test-secret"},
		Export:    config.ExportConfig{Title: "Inquiries"},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	blobs, err := storage.NewFileBlobStore(t.TempDir())
	require.NoError(t, err)
	store := repository.NewLocalInquiryRepository(blobs, repository.DefaultLocalKey)

	return newRouter(testConfig(), zap.NewNop(), store, catalog.Default())
}

func do(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"password": "letmein"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payload struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.NotEmpty(t, payload.Data.AccessToken)
	return payload.Data.AccessToken
}

func TestRouterRejectsWrongPassword(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"password": "nope"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouterRequiresSession(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/v1/inquiries", "/api/v1/inquiries/breakdown", "/api/v1/inquiries/export?format=csv"} {
		w := do(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRouterCatalogIsPublic(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/v1/catalog", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Wilbur Wright")
}

func TestRouterDraftThenList(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := do(r, http.MethodPost, "/api/v1/drafts", token, map[string]string{
		"name":        "Avery",
		"email":       "avery@example.com",
		"program":     "Game Design",
		"campus":      "Kennedy-King",
		"credit_type": "Credit",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var drafted struct {
		Data struct {
			StudentEmail string `json:"student_email"`
			Saved        bool   `json:"saved"`
			Backend      string `json:"backend"`
		} `json:"data"`
		Meta struct {
			Notice struct {
				Text string `json:"text"`
				Type string `json:"type"`
			} `json:"notice"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &drafted))
	assert.True(t, drafted.Data.Saved)
	assert.Equal(t, repository.BackendLocal, drafted.Data.Backend)
	assert.Contains(t, drafted.Data.StudentEmail, "forwarded your information to Kennedy-King College")
	assert.Equal(t, "Inquiry saved", drafted.Meta.Notice.Text)

	w = do(r, http.MethodGet, "/api/v1/inquiries?campus=Kennedy-King", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Data struct {
			Total   int `json:"total"`
			Matched int `json:"matched"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Equal(t, 1, listed.Data.Total)
	assert.Equal(t, 1, listed.Data.Matched)

	w = do(r, http.MethodGet, "/api/v1/inquiries/emails?campus=Kennedy-King", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "avery@example.com", strings.TrimSpace(w.Body.String()))

	w = do(r, http.MethodGet, "/api/v1/inquiries/export?format=csv", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	assert.Contains(t, w.Body.String(), "avery@example.com")

	w = do(r, http.MethodDelete, "/api/v1/inquiries", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/api/v1/inquiries", token, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Zero(t, listed.Data.Total)
}

func TestRouterHealthAndReady(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/ready", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), repository.BackendLocal)

	w = do(r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOpenInquiryStoreFallsBackToLocal(t *testing.T) {
	cfg := testConfig()
	cfg.RemoteStore.Enabled = true
	cfg.Database = config.DatabaseConfig{Host: "127.0.0.1", Port: 1, User: "x", Name: "x", SSLMode: "disable"}
	cfg.LocalStore = config.LocalStoreConfig{Driver: config.LocalDriverFile, Path: t.TempDir(), Key: repository.DefaultLocalKey}

	store, closeStore, err := openInquiryStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeStore()

	assert.Equal(t, repository.BackendLocal, store.Backend())
}
