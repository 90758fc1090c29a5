package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"commis/internal/domain"
	"commis/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

// GetStats computes dashboard aggregates over the filtered record set: the
// overall count and amount plus per-carrier, per-agent, and per-type totals.
func (r *statsRepo) GetStats(ctx context.Context, filters domain.RecordFilters) (*domain.Stats, error) {
	clause, args := buildRecordWhere(filters)

	stats := &domain.Stats{}

	totalsQuery := fmt.Sprintf(
		`SELECT COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total FROM commission_records %s`, clause)
	var totals struct {
		Count int     `db:"count"`
		Total float64 `db:"total"`
	}
	if err := r.db.GetContext(ctx, &totals, totalsQuery, args...); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats totals: %w", err)
	}
	stats.TotalRecords = totals.Count
	stats.TotalAmount = totals.Total

	groups := []struct {
		column string
		dest   *[]domain.GroupTotal
	}{
		{"carrier", &stats.ByCarrier},
		{"agent_name", &stats.ByAgent},
		{"transaction_type", &stats.ByType},
	}
	for _, g := range groups {
		rows, err := r.groupTotals(ctx, g.column, clause, args)
		if err != nil {
			return nil, err
		}
		*g.dest = rows
	}

	return stats, nil
}

func (r *statsRepo) groupTotals(ctx context.Context, column, clause string, args []interface{}) ([]domain.GroupTotal, error) {
	query := fmt.Sprintf(
		`SELECT %s AS key, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total
		FROM commission_records %s
		GROUP BY %s
		ORDER BY total DESC`,
		column, clause, column,
	)
	rows := []domain.GroupTotal{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("statsRepo.groupTotals %s: %w", column, err)
	}
	return rows, nil
}
