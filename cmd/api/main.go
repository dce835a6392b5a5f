package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"resume-editor/internal/bootstrap"
	"resume-editor/internal/shared/config"
	"resume-editor/internal/shared/server"
	"resume-editor/internal/shared/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.Load()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		telemetry.Info("server.start", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if dir, ok := app.WatchDir(); ok {
		watcher, err := app.Resumes.WatchDir(dir)
		if err != nil {
			telemetry.Warn("resume.watch.disabled", map[string]any{"dir": dir, "error": err})
		} else {
			g.Go(func() error {
				return watcher.Run(gctx)
			})
		}
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		telemetry.Info("server.shutdown", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
