package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	adapthttp "bmicalc/internal/adapter/http"
	"bmicalc/internal/adapter/memory"
	"bmicalc/internal/app"
	"bmicalc/internal/config"
)

var (
	serveConfig string
	serveAddr   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the BMI JSON API",
	Long: `Run the BMI JSON API.

CONFIGURATION:

  Settings come from built-in defaults, then the YAML file given with
  --config (or $BMICALC_CONFIG), then the environment:

    ADDR / PORT        listen address or port
    WEB_DIR            directory of static files to serve at /
    LOG_LEVEL          debug | info | warn | error
    LOG_FORMAT         text | json
    METRICS_ENABLED    expose Prometheus metrics (default true)

  --addr overrides everything else.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := serveConfig
		if path == "" {
			path = os.Getenv("BMICALC_CONFIG")
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		slog.SetDefault(newLogger(cfg.Log))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "path to YAML config file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, e.g. :3000")
}

func newLogger(lc config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lc.SlogLevel()}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func serve(ctx context.Context, cfg *config.Config) error {
	svc := app.NewBMIService(memory.New()).WithObserver(adapthttp.Observer{})
	h := adapthttp.New(svc).
		WithWebDir(cfg.Server.WebDir).
		WithMetrics(cfg.EffectiveMetricsPath()).
		WithLogger(slog.Default()).
		Handler()

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("listening", "addr", cfg.Server.Addr)
		for _, r := range adapthttp.Routes() {
			slog.Info("endpoint", "method", r.Method, "path", r.Path)
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		slog.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}
