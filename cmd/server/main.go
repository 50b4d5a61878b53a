package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/strawberrytart/auction-house/internal/config"
	"github.com/strawberrytart/auction-house/internal/server"
	"github.com/strawberrytart/auction-house/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", map[string]any{"error": err.Error()})
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		logger.Fatal("server init failed", map[string]any{"error": err.Error()})
	}

	httpServer := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      srv.Router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		logger.Info("http server listening", map[string]any{"addr": httpServer.Addr, "env": cfg.App.Env})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server error", map[string]any{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("http shutdown error", map[string]any{"error": err.Error()})
	}
	if err := srv.Close(); err != nil {
		logger.Error("close error", map[string]any{"error": err.Error()})
	}
}
