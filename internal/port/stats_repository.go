package port

import (
	"context"

	"commis/internal/domain"
)

// StatsRepository provides aggregate statistics queries over stored records.
type StatsRepository interface {
	GetStats(ctx context.Context, filters domain.RecordFilters) (*domain.Stats, error)
}
