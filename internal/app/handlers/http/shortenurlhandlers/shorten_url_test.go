package shortenurlhandlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aseptimu/shortlink/internal/app/config"
	"github.com/aseptimu/shortlink/internal/app/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockService struct {
	deadline bool
}

func (m *mockService) ShortenURL(ctx context.Context, url string) (string, error) {
	_, m.deadline = ctx.Deadline()
	switch url {
	case "http://example.com":
		return "abcdef", nil
	case "http://broken.example":
		return "", &service.PersistenceError{Op: "upsert", Err: errors.New("connection lost")}
	}
	return "zzzzzz", nil
}

func (m *mockService) GetOriginalURL(_ context.Context, id string) (string, error) {
	switch id {
	case "abcdef":
		return "http://example.com", nil
	case "broken":
		return "", &service.PersistenceError{Op: "get", Err: errors.New("connection lost")}
	case "relative":
		return "not a url", nil
	}
	return "", service.ErrURLNotFound
}

func newTestConfig() *config.ConfigType {
	return &config.ConfigType{BaseAddress: "http://localhost:8080/", RequestTimeout: time.Second}
}

func TestURLCreator(t *testing.T) {
	svc := &mockService{}
	handler := NewShortenHandler(newTestConfig(), svc, zap.NewNop().Sugar())
	router := gin.New()
	router.POST("/", handler.URLCreator)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
		json       bool
	}{
		{name: "created", body: `{"url": "http://example.com"}`, wantStatus: http.StatusCreated, wantBody: `{"url":"http://localhost:8080/abcdef"}`, json: true},
		{name: "store failure", body: `{"url": "http://broken.example"}`, wantStatus: http.StatusUnprocessableEntity, wantBody: "Unprocessable Entity"},
		{name: "not json", body: `http://example.com`, wantStatus: http.StatusBadRequest, wantBody: "Bad Request"},
		{name: "missing url", body: `{}`, wantStatus: http.StatusUnprocessableEntity, wantBody: "Unprocessable Entity"},
		{name: "empty url", body: `{"url": ""}`, wantStatus: http.StatusUnprocessableEntity, wantBody: "Unprocessable Entity"},
		{name: "url of wrong type", body: `{"url": 5}`, wantStatus: http.StatusUnprocessableEntity, wantBody: "Unprocessable Entity"},
		{name: "truncated json", body: `{"url": "http://exa`, wantStatus: http.StatusBadRequest, wantBody: "Bad Request"},
		{name: "malformed url accepted", body: `{"url": "::::"}`, wantStatus: http.StatusCreated, wantBody: `{"url":"http://localhost:8080/zzzzzz"}`, json: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, r)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.json {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			} else {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
	assert.True(t, svc.deadline, "storage call should carry the request deadline")
}

func TestURLCreator_LogsFailure(t *testing.T) {
	core, obs := observer.New(zap.ErrorLevel)
	handler := NewShortenHandler(newTestConfig(), &mockService{}, zap.New(core).Sugar())
	router := gin.New()
	router.POST("/", handler.URLCreator)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"url":"http://broken.example"}`)))

	require.Equal(t, 1, obs.Len())
	assert.Equal(t, "Failed to shorten URL", obs.All()[0].Message)
}

func TestGetURL(t *testing.T) {
	handler := NewGetURLHandler(newTestConfig(), &mockService{}, zap.NewNop().Sugar())
	router := gin.New()
	router.GET("/:id", handler.GetURL)

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{name: "found", path: "/abcdef", wantStatus: http.StatusFound, wantLocation: "http://example.com"},
		{name: "verbatim location", path: "/relative", wantStatus: http.StatusFound, wantLocation: "not a url"},
		{name: "unknown", path: "/ZZZZZZ", wantStatus: http.StatusNotFound},
		{name: "store failure", path: "/broken", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatus, res.StatusCode)
			assert.Equal(t, tt.wantLocation, res.Header.Get("Location"))
			if tt.wantStatus == http.StatusNotFound {
				assert.Equal(t, "Not Found", w.Body.String())
			}
		})
	}
}
