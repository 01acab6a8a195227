package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spacesedan/adpulse/internal/clients"
)

const HEALTHCHECK_TIMER = 15

// MonitorCacheHealth pings the response cache on a fixed interval and
// records the result in the shared health flag.
func MonitorCacheHealth(ctx context.Context, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			vc := clients.GetValkeyClient()
			res := vc.DoWithRetry(ctx, vc.Client.B().Ping().Build(), 3)
			isHealthy := res.Error() == nil
			healthy.Store(isHealthy)
			if !isHealthy {
				slog.Warn("[HealthCheck] Response cache is unhealthy",
					slog.String("error", res.Error().Error()))
			}
		}
	}
}
