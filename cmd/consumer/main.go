package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spacesedan/adpulse/config"
	"github.com/spacesedan/adpulse/internal/clients"
	"github.com/spacesedan/adpulse/internal/clients/kafka_client"
	"github.com/spacesedan/adpulse/internal/consumers"
	"github.com/spacesedan/adpulse/internal/datasets"
	"github.com/spacesedan/adpulse/internal/logging"
	"github.com/spacesedan/adpulse/internal/pipeline"
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
	cfg := kafka_client.GetKafkaConfig()

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

	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	campaignConsumer := consumers.NewCampaignConsumer(analyzer)
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_CAMPAIGN_REQUESTS, consumers.WrapConsumer(
		campaignConsumer.Start).Handler())

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
