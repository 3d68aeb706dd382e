package controller

import (
	"context"
	"log/slog"
	"time"

	cacheport "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/cache/port"
)

// historyCacheTTL bounds staleness of the cached chat-history response.
const historyCacheTTL = time.Minute

func historyCacheKey(userID string) string {
	return "chat-history:" + userID
}

// invalidateHistory drops the user's cached history listing. Best effort:
// the database stays the source of truth, a failed invalidation only delays
// freshness until the TTL expires.
func invalidateHistory(ctx context.Context, cache cacheport.Cache, userID string) {
	if cache == nil {
		return
	}
	if _, err := cache.Del(ctx, historyCacheKey(userID)); err != nil {
		slog.Warn("history cache invalidation failed", "user", userID, "err", err)
	}
}
