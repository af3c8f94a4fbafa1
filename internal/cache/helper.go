package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"skillswap/internal/observability"
)

// GetJSON fetches a key and unmarshals it into dest.
// Returns false when the client is unavailable, the key is missing, or the
// payload fails to decode.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if client == nil {
		return false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// Stale or corrupt payload, drop it so the next read repopulates.
		client.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON marshals value and stores it under key with the given TTL.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// Aside implements the cache-aside pattern: try the cache, fall back to the
// loader which fills dest, then populate the cache with the loaded value.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, loader func() error) error {
	prefix := keyPrefix(key)
	if GetJSON(ctx, key, dest) {
		observability.CacheLookups.WithLabelValues(prefix, "hit").Inc()
		return nil
	}
	observability.CacheLookups.WithLabelValues(prefix, "miss").Inc()

	if err := loader(); err != nil {
		return err
	}
	SetJSON(ctx, key, dest, ttl)
	return nil
}

func keyPrefix(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i+1]
	}
	return key
}
