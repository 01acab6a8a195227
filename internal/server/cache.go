package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spacesedan/adpulse/internal/clients"
	"github.com/spacesedan/adpulse/internal/models"
)

const memoryCacheLimit = 100

// ResponseCache stores analysis responses keyed by request content. It
// prefers Valkey when available and keeps a bounded in-memory copy so
// repeated requests survive a cache outage. The in-memory map inserts
// until full and never evicts; Valkey entries expire on their own TTL.
type ResponseCache struct {
	mu      sync.Mutex
	entries map[string]*models.AnalysisResponse

	valkeyEnabled bool
}

func NewResponseCache(valkeyEnabled bool) *ResponseCache {
	return &ResponseCache{
		entries:       make(map[string]*models.AnalysisResponse),
		valkeyEnabled: valkeyEnabled,
	}
}

// CacheKey hashes the request fields that determine a text-only analysis.
func CacheKey(req models.AnalysisRequest) string {
	raw := fmt.Sprintf("%s|%s|%s|%t", req.Caption, req.Platform, req.PostingDate, req.Influencer)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func (c *ResponseCache) Get(ctx context.Context, key string) (*models.AnalysisResponse, bool) {
	if c.valkeyEnabled {
		if payload, ok := clients.GetValkeyClient().GetCachedResponse(ctx, key); ok {
			var response models.AnalysisResponse
			if err := json.Unmarshal([]byte(payload), &response); err == nil {
				return &response, true
			}
			slog.Warn("[ResponseCache] Discarding unreadable cached payload",
				slog.String("key", key))
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	response, ok := c.entries[key]
	return response, ok
}

func (c *ResponseCache) Put(ctx context.Context, key string, response *models.AnalysisResponse) {
	if c.valkeyEnabled {
		if payload, err := json.Marshal(response); err == nil {
			if err := clients.GetValkeyClient().CacheResponse(ctx, key, string(payload)); err != nil {
				slog.Warn("[ResponseCache] Failed to cache response in Valkey",
					slog.String("error", err.Error()))
			}
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists || len(c.entries) < memoryCacheLimit {
		c.entries[key] = response
	}
}
