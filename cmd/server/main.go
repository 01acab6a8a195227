package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spacesedan/adpulse/config"
	"github.com/spacesedan/adpulse/internal/clients"
	"github.com/spacesedan/adpulse/internal/datasets"
	"github.com/spacesedan/adpulse/internal/logging"
	"github.com/spacesedan/adpulse/internal/monitoring"
	"github.com/spacesedan/adpulse/internal/pipeline"
	"github.com/spacesedan/adpulse/internal/server"
	"github.com/spacesedan/adpulse/internal/vision"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := datasets.Load(ctx)
	if err != nil {
		slog.Error("[Main] Failed to load datasets",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	var visionAnalyzer pipeline.VisionAnalyzer
	if os.Getenv("OPENAI_API_KEY") != "" {
		visionAnalyzer = vision.NewAnalyzer(clients.GetAIClient().Client)
	} else {
		slog.Warn("[Main] OPENAI_API_KEY not set, image analysis disabled")
	}

	analyzer := pipeline.New(store, visionAnalyzer)

	health := map[string]*atomic.Bool{}
	valkeyEnabled := os.Getenv("VALKEY_INIT_ADDRESS") != ""
	if valkeyEnabled {
		clients.InitValkey()
		defer clients.CloseValkey()

		cacheHealthy := &atomic.Bool{}
		cacheHealthy.Store(true)
		health["response_cache"] = cacheHealthy
		go monitoring.MonitorCacheHealth(ctx, cacheHealthy)
	} else {
		slog.Warn("[Main] VALKEY_INIT_ADDRESS not set, using in-memory response cache only")
	}

	srv := server.New(analyzer, store, server.NewResponseCache(valkeyEnabled), health)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server stopped",
				slog.String("error", err.Error()))
			cancel()
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		slog.Info("[Main] Shutdown signal received")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Shutdown failed",
			slog.String("error", err.Error()))
	}
}
