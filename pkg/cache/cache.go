// Package cache provides the response cache for the JSON-RPC fetch layer.
//
// Three implementations share one interface: a file cache for normal CLI
// use, a Redis cache for setups that already run one, and a null cache for
// --no-cache and tests. Confirmed transactions never change, so entries are
// typically stored without expiration.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit; an
	// expired or missing entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}

// Key builds a namespaced cache key by hashing the parts:
// "prefix:sha256(parts)". Long or unsafe inputs (addresses, URLs) become
// fixed-size filesystem- and Redis-safe keys.
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
