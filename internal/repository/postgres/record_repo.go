package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"commis/internal/domain"
	"commis/internal/port"
)

type recordRepo struct {
	db *sqlx.DB
}

// NewRecordRepo creates a new PostgreSQL-backed CommissionRecordRepository.
func NewRecordRepo(db *sqlx.DB) port.CommissionRecordRepository {
	return &recordRepo{db: db}
}

const insertRecordQuery = `INSERT INTO commission_records
	(id, carrier, agent_name, transaction_type, amount, period, row_position, fingerprint, source_file, extensions, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (fingerprint) DO NOTHING`

// CreateBatch inserts records in one transaction. Fingerprint collisions are
// skipped by the conflict clause, which is what makes re-uploading a file
// idempotent without any application-level locking: concurrent uploads of
// the same file race on the unique index, and the loser simply inserts
// nothing.
func (r *recordRepo) CreateBatch(ctx context.Context, records []domain.CommissionRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("recordRepo.CreateBatch begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PreparexContext(ctx, insertRecordQuery)
	if err != nil {
		return 0, fmt.Errorf("recordRepo.CreateBatch prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now().UTC()
	inserted := 0
	for i := range records {
		rec := &records[i]
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		res, err := stmt.ExecContext(ctx,
			rec.ID, rec.Carrier, rec.AgentName, rec.TransactionType, rec.Amount,
			rec.Period, rec.RowPosition, rec.Fingerprint, rec.SourceFile,
			rec.Extensions, rec.CreatedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("recordRepo.CreateBatch insert row %d: %w", rec.RowPosition, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("recordRepo.CreateBatch rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("recordRepo.CreateBatch commit: %w", err)
	}
	return inserted, nil
}

// buildRecordWhere constructs a dynamic WHERE clause for commission_records
// queries. It returns the clause string (possibly empty) and the positional
// arguments.
func buildRecordWhere(filters domain.RecordFilters) (clause string, args []interface{}) {
	conds := []string{}
	argN := 1

	if filters.Carrier != "" {
		conds = append(conds, fmt.Sprintf("carrier = $%d", argN))
		args = append(args, filters.Carrier)
		argN++
	}
	if filters.Agent != "" {
		conds = append(conds, fmt.Sprintf("agent_name = $%d", argN))
		args = append(args, filters.Agent)
		argN++
	}
	if filters.TransactionType != "" {
		conds = append(conds, fmt.Sprintf("transaction_type = $%d", argN))
		args = append(args, filters.TransactionType)
		argN++
	}
	if filters.PeriodFrom != "" {
		conds = append(conds, fmt.Sprintf("period >= $%d", argN))
		args = append(args, filters.PeriodFrom)
		argN++
	}
	if filters.PeriodTo != "" {
		conds = append(conds, fmt.Sprintf("period <= $%d", argN))
		args = append(args, filters.PeriodTo)
		argN++ //nolint:ineffassign // argN kept incremented for consistency
	}

	for i, c := range conds {
		if i == 0 {
			clause = "WHERE " + c
		} else {
			clause += " AND " + c
		}
	}
	return clause, args
}

func (r *recordRepo) List(ctx context.Context, filters domain.RecordFilters) ([]domain.CommissionRecord, int, error) {
	clause, args := buildRecordWhere(filters)

	var total int
	countQuery := "SELECT COUNT(*) FROM commission_records " + clause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("recordRepo.List count: %w", err)
	}

	listQuery := fmt.Sprintf(
		`SELECT id, carrier, agent_name, transaction_type, amount, period, row_position,
			fingerprint, source_file, extensions, created_at
		FROM commission_records %s
		ORDER BY period DESC, carrier, agent_name, row_position
		OFFSET $%d LIMIT $%d`,
		clause, len(args)+1, len(args)+2,
	)
	args = append(args, filters.Offset, filters.Limit)

	records := []domain.CommissionRecord{}
	if err := r.db.SelectContext(ctx, &records, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("recordRepo.List select: %w", err)
	}
	return records, total, nil
}

func (r *recordRepo) DistinctAgents(ctx context.Context) ([]string, error) {
	agents := []string{}
	if err := r.db.SelectContext(ctx, &agents,
		"SELECT DISTINCT agent_name FROM commission_records ORDER BY agent_name"); err != nil {
		return nil, fmt.Errorf("recordRepo.DistinctAgents: %w", err)
	}
	return agents, nil
}
