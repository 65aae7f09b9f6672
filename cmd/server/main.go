package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"saintkernel/internal/audit"
	"saintkernel/internal/boundary"
	"saintkernel/internal/kernel"
	kernelhandler "saintkernel/internal/kernel/handler"
	"saintkernel/internal/kernel/metrics"
	"saintkernel/internal/platform/config"
	"saintkernel/internal/platform/httpserver"
	"saintkernel/internal/platform/logger"
	httptransport "saintkernel/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	table := boundary.Default()
	if cfg.BoundariesFile != "" {
		loaded, err := boundary.Load(cfg.BoundariesFile)
		if err != nil {
			log.Error("boundary file rejected", "file", cfg.BoundariesFile, "error", err)
			os.Exit(1)
		}
		table = loaded
		log.Info("boundary table loaded", "file", cfg.BoundariesFile)
	}

	mirrorInbox := make(chan audit.Entry, cfg.MirrorBufferSize)
	store := audit.NewInMemoryStore(audit.WithSink(mirrorInbox))
	mirror := audit.NewMirror(log, mirrorInbox)

	svc := kernel.NewService(table, store, kernel.SystemClock(), log, metrics.New())
	handler := kernelhandler.New(svc, log)
	router := httptransport.NewRouter(handler)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting saint-kernel", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := mirror.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
