package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/crucial707/habit-countdown/internal/config"
	"github.com/crucial707/habit-countdown/internal/page"
	"github.com/crucial707/habit-countdown/internal/renderer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := newLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("countdown web host stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	doc, err := loadPage(cfg)
	if err != nil {
		return err
	}

	// Page load: targets are discovered once and owned by this renderer until shutdown.
	handle := renderer.Start(doc.ReminderTargets(), renderer.WithLogger(logger))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(doc, handle.Running, cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("countdown web host listening", "addr", srv.Addr, "tls", cfg.TLS(), "page", pageSource(cfg))
		var err error
		if cfg.TLS() {
			err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if stopErr := handle.Stop(shutdownCtx); err == nil {
			err = stopErr
		}
		return err
	})
	return g.Wait()
}

// loadPage reads PAGE_FILE, or builds the built-in reminders page when it is unset.
func loadPage(cfg config.Config) (*page.Document, error) {
	if cfg.PageFile != "" {
		return page.Load(cfg.PageFile)
	}
	return page.Demo(cfg.DemoReminders())
}

func pageSource(cfg config.Config) string {
	if cfg.PageFile != "" {
		return cfg.PageFile
	}
	return "built-in"
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
