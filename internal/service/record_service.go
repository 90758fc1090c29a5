package service

import (
	"context"

	"commis/internal/domain"
	"commis/internal/port"
	"commis/internal/schema"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500

	// exportLimit caps a single export. Monthly statements run to a few
	// thousand rows, so this is generous.
	exportLimit = 100000
)

// RecordService defines the stored-record query contract.
type RecordService interface {
	List(ctx context.Context, filters domain.RecordFilters) ([]domain.CommissionRecord, int, error)
	Export(ctx context.Context, filters domain.RecordFilters) ([]domain.CommissionRecord, error)
	Agents(ctx context.Context) ([]string, error)
	Carriers() []domain.Carrier
}

type recordService struct {
	records  port.CommissionRecordRepository
	registry *schema.Registry
}

// NewRecordService creates a new RecordService implementation.
func NewRecordService(records port.CommissionRecordRepository, registry *schema.Registry) RecordService {
	return &recordService{records: records, registry: registry}
}

func (s *recordService) List(ctx context.Context, filters domain.RecordFilters) ([]domain.CommissionRecord, int, error) {
	filters.Offset, filters.Limit = normalizePagination(filters.Offset, filters.Limit)
	return s.records.List(ctx, filters)
}

// Export returns the full filtered record set for file export, unpaged.
func (s *recordService) Export(ctx context.Context, filters domain.RecordFilters) ([]domain.CommissionRecord, error) {
	filters.Offset = 0
	filters.Limit = exportLimit
	records, _, err := s.records.List(ctx, filters)
	return records, err
}

func (s *recordService) Agents(ctx context.Context) ([]string, error) {
	return s.records.DistinctAgents(ctx)
}

func (s *recordService) Carriers() []domain.Carrier {
	return s.registry.Carriers()
}

func normalizePagination(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return offset, limit
}
