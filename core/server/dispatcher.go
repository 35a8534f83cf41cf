package server

import (
	"context"
	"fmt"
	"net"

	"page-server/core/loader"
	"page-server/core/logger"
	"page-server/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrorResponse is the body sent for every request that ends in an error.
const ErrorResponse = "error handled"

// Dispatcher owns the HTTP port and the request pipeline:
// recover, ray id, request log, features in registration order, error handler.
type Dispatcher struct {
	cfg      Config
	logger   *zap.Logger
	features *loader.Manager
	app      *fiber.App
}

// New creates a dispatcher. No route is registered until Prepare.
func New(cfg Config, logg *zap.Logger, features *loader.Manager) *Dispatcher {
	d := &Dispatcher{
		cfg:      cfg,
		logger:   logg,
		features: features,
	}
	d.app = fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own ready message
		ErrorHandler:          d.handleError,
	})
	return d
}

// App returns the underlying Fiber application.
func (d *Dispatcher) App() *fiber.App {
	return d.app
}

// Prepare waits for every feature to finish its setup, then builds the
// pipeline. A failed preparation leaves the application without routes.
func (d *Dispatcher) Prepare(ctx context.Context) error {
	if err := d.features.PrepareAll(ctx); err != nil {
		return err
	}

	d.app.Use(recover.New())
	d.app.Use(rayid.New())
	d.app.Use(d.logRequest)

	if err := d.features.LoadAll(d.app); err != nil {
		return err
	}

	logger.Log(d.logger, zapcore.InfoLevel, map[string]any{
		"event":    "features loaded",
		"features": d.features.Names(),
	})
	return nil
}

func (d *Dispatcher) logRequest(c *fiber.Ctx) error {
	logger.WithRayID(d.logger, c).Debug("Request started",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("ip", c.IP()),
	)
	return c.Next()
}

// handleError is the final stage for every error returned (or panic
// recovered) by an earlier stage. The status code is left untouched.
func (d *Dispatcher) handleError(c *fiber.Ctx, err error) error {
	logger.Log(logger.WithRayID(d.logger, c), zapcore.ErrorLevel, err)
	return c.SendString(ErrorResponse)
}

// Serve binds the configured port and serves until ctx is done.
// A bind failure is returned immediately.
func (d *Dispatcher) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", d.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to bind port %d: %w", d.cfg.Port, err)
	}

	port := ln.Addr().(*net.TCPAddr).Port
	d.logger.Info(fmt.Sprintf("> Ready on http://localhost:%d", port), zap.Int("port", port))

	errCh := make(chan error, 1)
	go func() {
		errCh <- d.app.Listener(ln)
	}()

	select {
	case <-ctx.Done():
		d.logger.Info("Shutting down server...")
		err := d.app.Shutdown()
		_ = ln.Close()
		return err
	case err := <-errCh:
		return err
	}
}
