// Package utils holds the JSON codec and error logging shared by the
// kafka producer and the campaign consumers.
package utils

import (
	"encoding/json"
	"log/slog"
)

func SerializeToJSON(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("[KafkaUtils] Failed to serialize payload",
			slog.String("error", err.Error()))
		return nil, err
	}
	return data, nil
}

func DeserializeFromJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("[KafkaUtils] Failed to deserialize payload",
			slog.String("error", err.Error()))
		return err
	}
	return nil
}

// HandleConsumerError logs and swallows per-message failures so one bad
// batch never stops the consumer loop.
func HandleConsumerError(err error) {
	if err == nil {
		return
	}
	slog.Error("[KafkaUtils] Consumer error",
		slog.String("error", err.Error()))
}
