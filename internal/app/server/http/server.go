// Package http sets up middleware and runs the HTTP server.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	handlers "github.com/aseptimu/shortlink/internal/app/handlers/http"
	"github.com/aseptimu/shortlink/internal/app/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	srv    *http.Server
	logger *zap.SugaredLogger
}

// NewServer builds the engine with the shared middleware chain. obs may be
// nil to skip request metrics.
func NewServer(addr string, logger *zap.SugaredLogger, obs middleware.RequestObserver, h handlers.Handlers) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	logger.Debug("Setting up middleware")
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.MiddlewareLogger(logger))
	if obs != nil {
		r.Use(middleware.Metrics(obs))
	}
	r.Use(middleware.GzipMiddleware())
	h.RegisterRoutes(r)

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Infow("Starting HTTP server", "addr", ln.Addr().String())

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-ctx.Done():
		case <-stop:
			return
		}
		s.logger.Infow("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorw("Error shutting down server", "error", err)
		}
	}()

	err := s.srv.Serve(ln)
	close(stop)
	<-done
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
