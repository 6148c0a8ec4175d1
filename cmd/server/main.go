package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"content-forge/api/router"
	"content-forge/config"
	"content-forge/logger"
	"content-forge/services"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Log = logger.NewLogger(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Collaborator credential check happens here, before any run can start.
	svc, err := services.NewGeminiForgeService(ctx)
	if err != nil {
		logger.Log.Errorf("failed to initialize forge service: %v", err)
		os.Exit(1)
	}

	r := router.New(svc)
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: cors.Default().Handler(r),
	}

	go func() {
		logger.Log.Infof("starting content-forge server on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Errorf("server error: %v", err)
			cancel()
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Log.Info("received shutdown signal, shutting down server...")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("server shutdown error: %v", err)
	}

	logger.Log.Info("server stopped")
}
