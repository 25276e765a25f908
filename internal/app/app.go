package app

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pantry/internal/config"
	"pantry/internal/queue"
	"pantry/internal/session"
	"pantry/internal/sse"
	"pantry/internal/telemetry"
)

const minSweepInterval = time.Minute

type App struct {
	cfg      *config.Config
	hub      *sse.Hub
	consumer queue.Consumer
	sessions *session.Store
	server   *http.Server
	logger   *zap.Logger
	wg       sync.WaitGroup

	shutdownTracing func(context.Context) error
}

func NewApp(cfg *config.Config, hub *sse.Hub, consumer queue.Consumer, sessions *session.Store, router *gin.Engine, logger *zap.Logger) *App {
	return &App{
		cfg:      cfg,
		hub:      hub,
		consumer: consumer,
		sessions: sessions,
		server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	shutdown, err := telemetry.Init(ctx, a.cfg)
	if err != nil {
		return err
	}
	a.shutdownTracing = shutdown

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.hub.Run(ctx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.consumer.Start(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error("consumer stopped", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sessions.Run(ctx, sweepInterval(a.cfg.SessionTTL))
	}()

	a.logger.Info("http server listening",
		zap.String("addr", a.cfg.HTTPAddr),
		zap.String("store_driver", a.cfg.StoreDriver),
		zap.String("collection", a.cfg.Collection),
	)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("graceful shutdown started")
	shutdownErr := a.server.Shutdown(ctx)

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		if shutdownErr != nil {
			return shutdownErr
		}
		return ctx.Err()
	}

	if a.shutdownTracing != nil {
		if err := a.shutdownTracing(ctx); err != nil {
			a.logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}
	a.logger.Info("graceful shutdown completed")
	return shutdownErr
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}

func sweepInterval(ttl time.Duration) time.Duration {
	if interval := ttl / 4; interval > minSweepInterval {
		return interval
	}
	return minSweepInterval
}
