package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/go-redis/redis/v8"
)

// ResultCache is an explicit, injected cache for ranked match lists. The
// engine itself stays pure; callers that want caching wire one of these
// into the service. A nil *ResultCache disables caching entirely.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, ttl: ttl}
}

// Get returns the cached ranked matches for the key, or nil on a miss.
// Redis errors are treated as misses; the caller recomputes.
func (c *ResultCache) Get(ctx context.Context, key string) []*RankedMatch {
	if c == nil {
		return nil
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		recordCacheLookup(false)
		return nil
	}
	var matches []*RankedMatch
	if err := json.Unmarshal(payload, &matches); err != nil {
		recordCacheLookup(false)
		return nil
	}
	recordCacheLookup(true)
	return matches
}

// Set stores the ranked matches under the key. Failures are ignored; the
// cache is best-effort.
func (c *ResultCache) Set(ctx context.Context, key string, matches []*RankedMatch) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(matches)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, payload, c.ttl)
}

// CacheKey derives a stable key from the requesting user and the exact
// filter set, so different filters never share an entry.
func CacheKey(userID string, filters *MatchingFilters, maxResults int, lang Language) string {
	h := fnv.New64a()
	payload, _ := json.Marshal(filters)
	h.Write(payload)
	fmt.Fprintf(h, "|%d|%s", maxResults, lang)
	return fmt.Sprintf("matching:results:%s:%x", userID, h.Sum64())
}
