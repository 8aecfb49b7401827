package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/aseptimu/shortlink/internal/app/cache"
	"github.com/aseptimu/shortlink/internal/app/config"
	handlers "github.com/aseptimu/shortlink/internal/app/handlers/http"
	"github.com/aseptimu/shortlink/internal/app/handlers/http/dbhandlers"
	"github.com/aseptimu/shortlink/internal/app/logger"
	"github.com/aseptimu/shortlink/internal/app/metrics"
	server "github.com/aseptimu/shortlink/internal/app/server/http"
	"github.com/aseptimu/shortlink/internal/app/service"
	"github.com/aseptimu/shortlink/internal/app/store"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("shortener: %v", err)
	}
}

func run() error {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		return err
	}

	sugar, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = sugar.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, pinger, closeStore, err := openStore(ctx, cfg.DSN, sugar)
	if err != nil {
		return err
	}
	defer closeStore()

	var urlCache service.URLCache
	if cfg.RedisAddr != "" {
		rc := cache.NewRedis(cfg.RedisAddr, cfg.CacheTTL)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			sugar.Warnw("Redis unreachable, lookups go to the store", "addr", cfg.RedisAddr, "error", err)
		}
		urlCache = rc
	}

	m := metrics.New()
	h := handlers.New(
		cfg,
		service.NewURLService(src, service.WithCollisionObserver(m)),
		service.NewGetURLService(src, urlCache),
		pinger,
		m.Handler(),
		sugar,
	)

	if err := server.NewServer(cfg.ServerAddress, sugar, m, h).Run(ctx); err != nil {
		return fmt.Errorf("server failed on %s: %w", cfg.ServerAddress, err)
	}
	sugar.Infow("Server stopped")
	return nil
}

// openStore picks PostgreSQL when a DSN is given and the in-memory store
// otherwise. The returned pinger is nil for the in-memory store so /ping
// reports that no database is in use.
func openStore(ctx context.Context, dsn string, logger *zap.SugaredLogger) (service.Store, dbhandlers.Pinger, func(), error) {
	if dsn == "" {
		logger.Warn("DATABASE_DSN is empty, mappings are kept in memory only")
		return store.NewStore(), nil, func() {}, nil
	}

	pool, err := store.Connect(ctx, dsn)
	if err != nil {
		return nil, nil, nil, err
	}
	db := store.NewDB(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}
	logger.Infow("Connected to database", "dsn", redactDSN(dsn))
	return db, db, pool.Close, nil
}

// redactDSN hides the password of URL-style DSNs.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "<unparseable dsn>"
	}
	return u.Redacted()
}
