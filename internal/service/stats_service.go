package service

import (
	"context"

	"commis/internal/domain"
	"commis/internal/port"
)

// StatsService defines the dashboard aggregates contract.
type StatsService interface {
	GetStats(ctx context.Context, filters domain.RecordFilters) (*domain.Stats, error)
}

type statsService struct {
	stats port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(stats port.StatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) GetStats(ctx context.Context, filters domain.RecordFilters) (*domain.Stats, error) {
	return s.stats.GetStats(ctx, filters)
}
