// Package cache provides pluggable byte caches for pipeline stage results.
//
// Layout computation is cheap at expected data scales, but rendered
// artifacts (SVG bytes, graphviz output) are cached so repeated renders of
// an unchanged records file are instant. Backends: a file cache for CLI
// usage, a redis cache for the serve mode, and a null cache for tests and
// --no-cache runs.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The boolean reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}
