package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"commis/internal/domain"
	"commis/internal/port"
)

type ingestionRepo struct {
	db *sqlx.DB
}

// NewIngestionRepo creates a new PostgreSQL-backed IngestionRepository.
func NewIngestionRepo(db *sqlx.DB) port.IngestionRepository {
	return &ingestionRepo{db: db}
}

func (r *ingestionRepo) Create(ctx context.Context, ingestion *domain.Ingestion) error {
	if ingestion.ID == uuid.Nil {
		ingestion.ID = uuid.New()
	}
	if ingestion.CreatedAt.IsZero() {
		ingestion.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO ingestions
			(id, carrier, file_name, rows_read, accepted, rejected, duplicates, status, error, rejects, created_at)
		VALUES
			(:id, :carrier, :file_name, :rows_read, :accepted, :rejected, :duplicates, :status, :error, :rejects, :created_at)`,
		ingestion,
	)
	if err != nil {
		return fmt.Errorf("ingestionRepo.Create: %w", err)
	}
	return nil
}

func (r *ingestionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingestion, error) {
	var ingestion domain.Ingestion
	err := r.db.GetContext(ctx, &ingestion,
		`SELECT id, carrier, file_name, rows_read, accepted, rejected, duplicates, status, error, rejects, created_at
		FROM ingestions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ingestionRepo.GetByID: %w", err)
	}
	return &ingestion, nil
}

func (r *ingestionRepo) List(ctx context.Context, offset, limit int) ([]domain.Ingestion, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM ingestions"); err != nil {
		return nil, 0, fmt.Errorf("ingestionRepo.List count: %w", err)
	}

	ingestions := []domain.Ingestion{}
	err := r.db.SelectContext(ctx, &ingestions,
		`SELECT id, carrier, file_name, rows_read, accepted, rejected, duplicates, status, error, rejects, created_at
		FROM ingestions ORDER BY created_at DESC OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("ingestionRepo.List select: %w", err)
	}
	return ingestions, total, nil
}
