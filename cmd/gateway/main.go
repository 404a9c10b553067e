package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	boltstore "github.com/dwikikusuma/comics-storefront/internal/session/infra/bolt"
	"github.com/dwikikusuma/comics-storefront/pkg/config"
	"github.com/dwikikusuma/comics-storefront/pkg/logger"
	"github.com/dwikikusuma/comics-storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "gateway",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	storage, err := boltstore.Open(cfg.StatePath)
	if err != nil {
		log.Error("open session storage failed", slog.Any("err", err), slog.String("path", cfg.StatePath))
		os.Exit(1)
	}
	defer storage.Close()

	sf, err := newStorefront(ctx, cfg, storage, &http.Client{}, log)
	if err != nil {
		log.Error("storefront init failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer sf.Close()

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           sf.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr), slog.String("api_url", cfg.APIURL))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	if err := shutdown.Graceful(10*time.Second, server.Shutdown, func() {
		log.Warn("graceful shutdown timeout, closing connections")
		_ = server.Close()
	}); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
