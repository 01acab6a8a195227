// Package logging installs the process-wide slog handler.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger sets the default slog handler for every adpulse binary.
// Dev environments log at debug so analysis traces show up locally.
func InitLogger() {
	level := slog.LevelInfo
	if os.Getenv("APP_ENV") == "dev" {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})

	slog.SetDefault(slog.New(handler))
}
