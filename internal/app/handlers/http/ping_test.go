package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aseptimu/shortlink/internal/app/handlers/http/dbhandlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDB struct {
	err error
}

func (f *fakeDB) Ping(_ context.Context) error {
	return f.err
}

func servePing(t *testing.T, p dbhandlers.Pinger) *http.Response {
	t.Helper()
	router := gin.New()
	router.GET("/ping", dbhandlers.NewPingHandler(p).Ping)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	return w.Result()
}

func TestPing_NoDB(t *testing.T) {
	res := servePing(t, nil)
	defer res.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `{"error":"Server doesn't use database"}`, string(body))
}

func TestPing_DBFails(t *testing.T) {
	res := servePing(t, &fakeDB{err: errors.New("fail ping")})
	defer res.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `{"error":"fail ping"}`, string(body))
}

func TestPing_OK(t *testing.T) {
	res := servePing(t, &fakeDB{})
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	assert.Empty(t, string(body))
}
