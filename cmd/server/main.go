package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talentmatch/internal/app"
	"talentmatch/internal/config"
	"talentmatch/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.App.LogJSON, cfg.App.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := app.NewContainer(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("container init failed", zap.Error(err))
	}
	defer container.Close()

	app.WarmSnapshot(ctx, container)

	server := app.NewServer(container)

	errCh := make(chan error, 1)
	go func() {
		zl.Info("http server listening", zap.String("port", cfg.App.HTTPPort))
		errCh <- server.Listen(":" + cfg.App.HTTPPort)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			zl.Fatal("http server failed", zap.Error(err))
		}
	case <-ctx.Done():
		zl.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.ShutdownWithContext(shutdownCtx); err != nil {
			zl.Error("graceful shutdown failed", zap.Error(err))
		}
	}

	zl.Info("server stopped")
}
