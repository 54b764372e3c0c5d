package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"camper-renderer/internal/config"
	"camper-renderer/internal/order"
	"camper-renderer/internal/server"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
)

var (
	serveFlags     config.Flags
	serveAccessLog bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rendering, quotes and orders over HTTP",
	Long: `Start the HTTP service.

Routes:
  GET  /health/live, /health/ready
  GET  /render?frame=&wheels=&options=a,b&format=&width=&trim=
  POST /render?format=     body: build JSON
  POST /quote              body: build JSON
  POST /orders             body: {"customer": {...}, "items": [build, ...]}

Examples:
  camper serve --addr :8080
  camper serve --config camper.toml --relay https://formspree.io/f/<id>`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveFlags.Address, "addr", "", "listen address (default :8080)")
	serveCmd.Flags().StringVar(&serveFlags.RelayURL, "relay", "", "form relay URL for /orders")
	serveCmd.Flags().StringVarP(&serveFlags.Format, "format", "f", "", "default /render format")
	serveCmd.Flags().BoolVar(&serveAccessLog, "access-log", true, "log every request")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(serveFlags)
	if err != nil {
		return err
	}
	if logLevel == "" && !verbose {
		// The config file's level applies when no flag was given.
		logLevel = cfg.Server.LogLevel
		if err := setupLogging(); err != nil {
			return err
		}
	}

	if dsn := cfg.Server.SentryDSN; dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			return fmt.Errorf("sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
		slog.Info("sentry enabled")
	}

	opts, err := cfg.Render.Export()
	if err != nil {
		return err
	}
	if cfg.Order.RelayURL == "" {
		slog.Warn("no relay URL configured, /orders will answer 503")
	}

	srv := server.New(server.Options{
		Export:       opts,
		Relay:        order.NewRelay(cfg.Order.Relay()),
		CacheEntries: cfg.Server.CacheEntries,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		AccessLog:    serveAccessLog,
		Log:          slog.Default(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Listen(cfg.Server.Address) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
		return srv.Shutdown()
	}
}
