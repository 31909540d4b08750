// Package worker runs the periodic attendance sync scheduler.
package worker

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"punchsync/config"
	"punchsync/internal/delivery"
	"punchsync/internal/delivery/middleware"
	"punchsync/internal/domain/lifecycle"
	"punchsync/internal/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	syncUC usecase.SyncUsecase
	server *echo.Echo
	cancel context.CancelFunc
	done   chan struct{}
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	SyncUC usecase.SyncUsecase
}

// NewServer creates a new scheduler worker with its health endpoint
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		syncUC: params.SyncUC,
		server: e,
		done:   make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the scheduler loop and the health HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	go s.runScheduler(loopCtx)

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// runScheduler syncs the whole fleet on a fixed interval. The first pass
// runs immediately so a fresh deployment does not wait a full interval.
func (s *workerServer) runScheduler(ctx context.Context) {
	defer close(s.done)

	if !s.cfg.Scheduler.Enabled {
		s.logger.Info("Sync scheduler is disabled")

		return
	}

	interval := s.cfg.Scheduler.Interval
	s.logger.Info("Starting sync scheduler", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.syncFleet(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sync scheduler stopped")

			return
		case <-ticker.C:
			s.syncFleet(ctx)
		}
	}
}

func (s *workerServer) syncFleet(ctx context.Context) {
	opts := usecase.SyncOptions{
		ClearAfterSync: s.cfg.Sync.ClearAfterSync,
	}

	fleet, err := s.syncUC.SyncAll(ctx, opts)
	if err != nil {
		s.logger.Error("Scheduled fleet sync failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Scheduled fleet sync finished",
		slog.Int("total", fleet.Total),
		slog.Int("succeeded", fleet.Succeeded),
		slog.Int("failed", fleet.Failed))
}

// stop gracefully shuts down the scheduler and the health server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down sync worker")

	if s.cancel != nil {
		s.cancel()
		select {
		case <-s.done:
		case <-shutdownCtx.Done():
		}
	}

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
