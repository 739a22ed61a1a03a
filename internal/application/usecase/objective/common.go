// Package objective contains strategic objective use cases.
package objective

import (
	"context"
	"log/slog"

	"github.com/strategic-planning/backend/internal/application/adapter"
)

// invalidateSummaries drops cached plan summaries after a change to the hierarchy.
func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate plan summaries", "error", err)
	}
}
