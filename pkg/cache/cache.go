// Package cache stores compiled figure artifacts so an unchanged document is
// not sent to the TeX engine twice.
//
// Entries are keyed by a hash of the compilation strategy and the document
// text (see [Keyer]). Two implementations are provided:
//
//   - [FileCache]: JSON entries under a directory, used by the CLI
//     (~/.cache/pgfplots by default)
//   - [NullCache]: never stores anything; used with --no-cache and in tests
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a compiled artifact stays valid.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the cached value and whether it was found.
	// Expired or unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of the artifact produced by compiling
	// documentHash with the named strategy.
	ArtifactKey(strategy, documentHash string) string
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard [Keyer].
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<sha256(strategy, documentHash)>".
func (DefaultKeyer) ArtifactKey(strategy, documentHash string) string {
	return hashKey("artifact", strategy, documentHash)
}
