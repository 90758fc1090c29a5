package port

import (
	"context"

	"github.com/google/uuid"

	"commis/internal/domain"
)

// CommissionRecordRepository defines the contract for canonical record
// persistence and dashboard queries.
type CommissionRecordRepository interface {
	// CreateBatch inserts a batch of records in a single transaction.
	// Records whose fingerprint already exists are skipped; the return is
	// the number of rows actually inserted. Either every new record in the
	// batch is inserted or none are.
	CreateBatch(ctx context.Context, records []domain.CommissionRecord) (int, error)
	List(ctx context.Context, filters domain.RecordFilters) ([]domain.CommissionRecord, int, error)
	DistinctAgents(ctx context.Context) ([]string, error)
}

// IngestionRepository defines the contract for ingestion history persistence.
type IngestionRepository interface {
	Create(ctx context.Context, ingestion *domain.Ingestion) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingestion, error)
	List(ctx context.Context, offset, limit int) ([]domain.Ingestion, int, error)
}
