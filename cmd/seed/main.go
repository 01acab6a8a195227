package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spacesedan/adpulse/config"
	"github.com/spacesedan/adpulse/internal/datasets"
	"github.com/spacesedan/adpulse/internal/logging"
)

// Seeds the DynamoDB dataset tables with the synthetic reference data.
func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := datasets.SeedTables(ctx); err != nil {
		slog.Error("[Seed] Failed to seed dataset tables",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("[Seed] Dataset tables seeded")
}
