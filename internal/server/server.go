// Package server exposes rendering, quoting and ordering over HTTP.
package server

import (
	"errors"
	"log/slog"
	"time"

	"camper-renderer/internal/cache"
	"camper-renderer/internal/export"
	"camper-renderer/internal/order"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// Options configures a Server.
type Options struct {
	Export       export.Options // defaults for /render
	Relay        *order.Relay   // nil disables /orders
	CacheEntries int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AccessLog    bool
	Log          *slog.Logger
}

type Server struct {
	app   *fiber.App
	opts  Options
	cache *cache.Cache
	log   *slog.Logger
}

// New builds the fiber app and registers every route.
func New(opts Options) *Server {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	s := &Server{
		opts:  opts,
		cache: cache.New(opts.CacheEntries),
		log:   opts.Log,
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "Camper Renderer",
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		ErrorHandler: s.handleError,
	})

	s.app.Use(recover.New())
	if opts.AccessLog {
		s.app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}?${queryParams}\n",
			TimeFormat: "15:04:05",
			TimeZone:   "Local",
		}))
	}

	s.app.Get("/health/live", s.live)
	s.app.Get("/health/ready", s.ready)

	s.app.Get("/render", s.renderQuery)
	s.app.Post("/render", s.renderBody)
	s.app.Post("/quote", s.quote)
	s.app.Post("/orders", s.submitOrder)

	return s
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.log.Info("listening", "address", addr)
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleError renders every error as {"error": msg}. Server-side failures
// are logged and reported to Sentry; without a configured client the
// report is a no-op.
func (s *Server) handleError(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.Error("request failed", "method", c.Method(), "path", c.Path(), "status", code, "error", err)
		sentry.CaptureException(err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
