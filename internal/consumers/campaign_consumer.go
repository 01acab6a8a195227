package consumers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/spacesedan/adpulse/internal/clients/kafka_client"
	"github.com/spacesedan/adpulse/internal/clients/kafka_client/utils"
	"github.com/spacesedan/adpulse/internal/models"
	"github.com/spacesedan/adpulse/internal/pipeline"
	batching "github.com/spacesedan/adpulse/internal/utils"
)

// CampaignConsumer drains campaign-request batches, analyzes each request
// and publishes result batches back to Kafka.
type CampaignConsumer struct {
	analyzer     *pipeline.Analyzer
	resultBuffer *batching.BatchBuffer[models.CampaignResult]
	batchID      atomic.Value
}

func NewCampaignConsumer(analyzer *pipeline.Analyzer) *CampaignConsumer {
	return &CampaignConsumer{
		analyzer:     analyzer,
		resultBuffer: batching.NewBatchBuffer[models.CampaignResult](),
	}
}

func (cc *CampaignConsumer) Start(ctx context.Context, consumer *kafka.Consumer, health ...*atomic.Bool) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[CampaignConsumer] Listening for messages...")

	ticker := time.NewTicker(batching.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[CampaignConsumer] Stopping consumer...")
			cc.flushResults()
			return
		case <-ticker.C:
			cc.flushResults()
		default:
			if !allHealthy(health) {
				time.Sleep(time.Second)
				continue
			}

			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var batch models.CampaignBatch
			if err := utils.DeserializeFromJSON(msg.Value, &batch); err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			cc.batchID.Store(batch.BatchID)

			for _, request := range batch.Requests {
				result := models.CampaignResult{RequestID: request.RequestID}

				response, err := cc.analyzer.AnalyzeCampaign(ctx, request)
				if err != nil {
					slog.Warn("[CampaignConsumer] Analysis failed",
						slog.String("request_id", request.RequestID),
						slog.String("error", err.Error()))
					result.Error = err.Error()
				} else {
					result.Response = response
				}

				cc.resultBuffer.Add(result)
				if cc.resultBuffer.Size() >= kafka_client.BATCH_SIZE {
					cc.flushResults()
				}
			}

			if err := committer.Commit(msg); err != nil {
				slog.Warn("[CampaignConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}

func (cc *CampaignConsumer) flushResults() {
	if !cc.resultBuffer.HasData() {
		return
	}

	batchID, _ := cc.batchID.Load().(string)
	resultBatch := models.CampaignResultBatch{
		BatchID: batchID,
		Results: cc.resultBuffer.GetAndClear(),
	}

	var err error
	for i := 0; i < 3; i++ {
		err = kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_CAMPAIGN_RESULTS,
			resultBatch.BatchID, resultBatch)
		if err == nil {
			break
		}
		slog.Warn("[CampaignConsumer] Failed to publish results, retrying...",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
	}
	if err != nil {
		slog.Error("[CampaignConsumer] Dropping result batch after publish retries",
			slog.String("batch_id", resultBatch.BatchID),
			slog.Int("results", len(resultBatch.Results)))
		return
	}

	slog.Info("[CampaignConsumer] Flushed result batch to Kafka",
		slog.String("batch_id", resultBatch.BatchID),
		slog.Int("results", len(resultBatch.Results)))
}

func allHealthy(health []*atomic.Bool) bool {
	for _, h := range health {
		if h != nil && !h.Load() {
			return false
		}
	}
	return true
}
