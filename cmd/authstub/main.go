package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"amigofiel/internal/config"
	"amigofiel/internal/logger"
	"amigofiel/internal/transport/rest"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rec := rest.NewRecorder()
	stub := rest.NewStubHandler(rec, log, cfg.StubSignupStatus, cfg.StubLoginStatus)
	router := rest.NewRouter(&rest.RouterDeps{
		Stub:           stub,
		AllowedOrigins: cfg.StubAllowedOrigins,
	})

	srv := rest.NewServer(router, cfg.StubAddress, log)
	reporter := rest.NewReporter(rec, log, cfg.StubReportInterval)

	log.Info("authstub: starting...",
		"signup_status", cfg.StubSignupStatus,
		"login_status", cfg.StubLoginStatus,
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Start(gCtx)
	})

	g.Go(func() error {
		return reporter.Run(gCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("authstub: stopped with error", "error", err)
		os.Exit(1)
	}

	log.Info("authstub stopped")
}
