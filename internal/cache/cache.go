// Package cache memoises successful model responses keyed by a fingerprint of their inputs.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// KeyPrefix namespaces every cache key.
const KeyPrefix = "billbuddy"

// DefaultTTL is how long a cached response stays valid.
const DefaultTTL = 24 * time.Hour

// Cache stores opaque values by key.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// Fingerprint derives a stable key for an operation from its JSON-encoded inputs.
func Fingerprint(op string, inputs ...any) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, in := range inputs {
		if err := enc.Encode(in); err != nil {
			return "", fmt.Errorf("failed to encode %s cache input: %w", op, err)
		}
	}
	return fmt.Sprintf("%s:%s:%s", KeyPrefix, op, hex.EncodeToString(h.Sum(nil))), nil
}
