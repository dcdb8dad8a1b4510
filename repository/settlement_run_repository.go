package repository

import (
	"context"
	"fmt"

	"bookie/database"
	"bookie/domain/entities"
	"bookie/domain/interfaces"
)

type settlementRunRepository struct {
	q Queryable
}

// NewSettlementRunRepository creates a new settlement run repository
func NewSettlementRunRepository(db *database.DB) interfaces.SettlementRunRepository {
	return &settlementRunRepository{q: db.Pool}
}

func (r *settlementRunRepository) Record(ctx context.Context, run *entities.SettlementRun) error {
	query := `
		INSERT INTO settlement_runs (id, started_at, finished_at, checked,
			settled, still_pending, needs_review, errors)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := r.q.QueryRow(ctx, query,
		run.ID,
		run.StartedAt,
		run.FinishedAt,
		run.Checked,
		run.Settled,
		run.StillPending,
		run.NeedsReview,
		run.Errors,
	).Scan(&run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record settlement run: %w", err)
	}
	return nil
}

func (r *settlementRunRepository) ListRecent(ctx context.Context, limit int) ([]*entities.SettlementRun, error) {
	query := `
		SELECT id, started_at, finished_at, checked, settled, still_pending,
		       needs_review, errors, created_at
		FROM settlement_runs
		ORDER BY started_at DESC
		LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query settlement runs: %w", err)
	}
	defer rows.Close()

	var runs []*entities.SettlementRun
	for rows.Next() {
		var run entities.SettlementRun
		err := rows.Scan(
			&run.ID,
			&run.StartedAt,
			&run.FinishedAt,
			&run.Checked,
			&run.Settled,
			&run.StillPending,
			&run.NeedsReview,
			&run.Errors,
			&run.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement run: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlement runs: %w", err)
	}
	return runs, nil
}
