package adapter

import "context"

// SummaryCache stores serialized plan summaries.
// Entries are scoped to a generation; Invalidate starts a new generation so every older entry is ignored.
type SummaryCache interface {
	// Get returns the cached value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value under the key.
	Set(ctx context.Context, key string, value []byte) error

	// Generation returns the current cache generation.
	Generation(ctx context.Context) (int64, error)

	// Invalidate starts a new cache generation.
	Invalidate(ctx context.Context) error
}
