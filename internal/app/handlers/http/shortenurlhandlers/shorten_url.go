// Package shortenurlhandlers contains the HTTP handlers for creating and
// following short URLs.
package shortenurlhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aseptimu/shortlink/internal/app/config"
	"github.com/aseptimu/shortlink/internal/app/service"
	"github.com/aseptimu/shortlink/internal/app/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShortenRequest is the body of POST /. URL is a pointer so a missing field
// can be told apart from a present one.
type ShortenRequest struct {
	URL *string `json:"url"`
}

// ShortenResponse carries the composed short URL.
type ShortenResponse struct {
	URL string `json:"url"`
}

// ShortenHandler creates short links.
type ShortenHandler struct {
	cfg     *config.ConfigType
	Service service.URLShortener
	logger  *zap.SugaredLogger
}

// NewShortenHandler creates a ShortenHandler.
func NewShortenHandler(cfg *config.ConfigType, service service.URLShortener, logger *zap.SugaredLogger) *ShortenHandler {
	return &ShortenHandler{cfg: cfg, Service: service, logger: logger}
}

// URLCreator handles POST /.
// It reads {"url": "..."} and answers 201 with {"url": "<base>/<id>"}.
// Malformed JSON gets 400. Well-formed JSON without a non-empty string url,
// and any storage failure, get 422.
func (h *ShortenHandler) URLCreator(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	var req ShortenRequest
	err := json.NewDecoder(c.Request.Body).Decode(&req)
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		writeStatus(c, http.StatusUnprocessableEntity)
		return
	case err != nil:
		writeStatus(c, http.StatusBadRequest)
		return
	case req.URL == nil || *req.URL == "":
		writeStatus(c, http.StatusUnprocessableEntity)
		return
	}
	url := *req.URL

	ctx, cancel := requestContext(c, h.cfg)
	defer cancel()

	id, err := h.Service.ShortenURL(ctx, url)
	if err != nil {
		h.logger.Errorw("Failed to shorten URL", "url", url, "error", err)
		writeStatus(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusCreated, ShortenResponse{URL: shortURL(h.cfg, id)})
}

func shortURL(cfg *config.ConfigType, id string) string {
	return strings.TrimRight(cfg.BaseAddress, "/") + "/" + id
}

// writeStatus answers with the plain-text description of status.
func writeStatus(c *gin.Context, status int) {
	c.String(status, http.StatusText(status))
	c.Abort()
}

// requestContext bounds storage calls by the configured request timeout.
func requestContext(c *gin.Context, cfg *config.ConfigType) (context.Context, context.CancelFunc) {
	if cfg.RequestTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
}
