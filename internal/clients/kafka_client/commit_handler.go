package kafka_client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// KafkaCommitHandler commits offsets after a campaign batch has been
// analyzed and its results published, so a crash replays the batch
// instead of losing it.
type KafkaCommitHandler struct {
	consumer *kafka.Consumer
	ctx      context.Context
}

func NewCommitHandler(ctx context.Context, consumer *kafka.Consumer) *KafkaCommitHandler {
	return &KafkaCommitHandler{
		consumer: consumer,
		ctx:      ctx,
	}
}

func (ch *KafkaCommitHandler) Commit(msg *kafka.Message) error {
	if ch.consumer == nil {
		return errors.New("[CommitHandler] consumer has not been initialized")
	}

	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		select {
		case <-ch.ctx.Done():
			slog.Warn("[CommitHandler] Context canceled, stopping commit")
			return ch.ctx.Err()
		default:
			_, err := ch.consumer.CommitMessage(msg)
			if err == nil {
				slog.Info("[CommitHandler] Committed offset",
					slog.Int("partition", int(msg.TopicPartition.Partition)),
					slog.Int64("offset", int64(msg.TopicPartition.Offset)))
				return nil
			}

			if kafkaErr, ok := err.(kafka.Error); ok && kafkaErr.Code() == kafka.ErrAllBrokersDown {
				slog.Error("[CommitHandler] All Kafka brokers are down, aborting commit")
				return err
			}

			slog.Warn("[CommitHandler] Failed to commit offset, retrying...",
				slog.Int("attempt", attempt),
				slog.Int("partition", int(msg.TopicPartition.Partition)),
				slog.Int64("offset", int64(msg.TopicPartition.Offset)),
				slog.String("error", err.Error()))

			time.Sleep(RETRY_DELAY)
		}
	}

	return fmt.Errorf("[CommitHandler] failed to commit message after %d retries", MAX_RETRIES)
}
