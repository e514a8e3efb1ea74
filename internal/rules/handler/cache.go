package handler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	platformredis "complyd/internal/platform/redis"
)

// Cache memoizes compliance check responses in Redis. The engine is
// deterministic, so identical (content, frameworks) inputs always produce
// identical responses and can be served from cache. A nil Cache or a nil
// client disables caching; failures degrade to a miss and never surface
// to the caller.
type Cache struct {
	client *platformredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCache constructs a result cache. client may be nil.
func NewCache(client *platformredis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached response for key, if present.
func (c *Cache) Get(ctx context.Context, key string) (CheckResponse, bool) {
	if c == nil || c.client == nil {
		return CheckResponse{}, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return CheckResponse{}, false
	}

	var resp CheckResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.WarnContext(ctx, "discarding undecodable cached compliance result",
			"key", key,
			"error", err,
		)
		return CheckResponse{}, false
	}
	return resp, true
}

// Set stores a response under key for the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, resp CheckResponse) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "compliance result cache write failed",
			"key", key,
			"error", err,
		)
	}
}

// cacheKey derives a stable key from the check inputs. Framework order must
// not affect the key, so the list is sorted before hashing.
func cacheKey(content string, frameworkIDs []string) string {
	ids := make([]string, len(frameworkIDs))
	copy(ids, frameworkIDs)
	sort.Strings(ids)

	h := sha256.New()
	h.Write([]byte(content))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(ids, ",")))
	return "compliance:check:" + hex.EncodeToString(h.Sum(nil))
}
