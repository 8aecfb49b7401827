// Package http wires the short URL handlers onto a gin engine.
package http

import (
	"net/http"

	"github.com/aseptimu/shortlink/internal/app/config"
	"github.com/aseptimu/shortlink/internal/app/handlers/http/dbhandlers"
	"github.com/aseptimu/shortlink/internal/app/handlers/http/shortenurlhandlers"
	"github.com/aseptimu/shortlink/internal/app/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers interface {
	RegisterRoutes(r *gin.Engine)
}

type handlersImpl struct {
	cfg       *config.ConfigType
	urlSvc    service.URLShortener
	urlGetSvc shortenurlhandlers.URLGetter
	pinger    dbhandlers.Pinger
	metrics   http.Handler
	logger    *zap.SugaredLogger
}

// New builds the route set. pinger and metrics may be nil; /metrics is only
// registered when a handler is given.
func New(
	cfg *config.ConfigType,
	urlSvc service.URLShortener,
	urlGetSvc shortenurlhandlers.URLGetter,
	pinger dbhandlers.Pinger,
	metrics http.Handler,
	logger *zap.SugaredLogger,
) Handlers {
	return &handlersImpl{
		cfg:       cfg,
		urlSvc:    urlSvc,
		urlGetSvc: urlGetSvc,
		pinger:    pinger,
		metrics:   metrics,
		logger:    logger,
	}
}

func (h *handlersImpl) RegisterRoutes(r *gin.Engine) {
	r.GET("/ping", dbhandlers.NewPingHandler(h.pinger).Ping)
	if h.metrics != nil {
		r.GET("/metrics", gin.WrapH(h.metrics))
	}
	r.POST("/", shortenurlhandlers.NewShortenHandler(h.cfg, h.urlSvc, h.logger).URLCreator)
	r.GET("/:id", shortenurlhandlers.NewGetURLHandler(h.cfg, h.urlGetSvc, h.logger).GetURL)
}
