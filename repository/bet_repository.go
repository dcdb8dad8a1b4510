package repository

import (
	"context"
	"fmt"

	"bookie/database"
	"bookie/domain/entities"
	"bookie/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

const betColumns = `id, user_id, bet_type, status, stake, odds, potential_payout,
		result_amount, settlement_reason, home_team, away_team, team_selection,
		spread_selection, spread_value, over_under_selection, total_points,
		event_id, settled_at, created_at, updated_at`

type betRepository struct {
	q Queryable
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *database.DB) interfaces.BetRepository {
	return &betRepository{q: db.Pool}
}

// NewBetRepositoryWithTx creates a bet repository bound to a transaction
func NewBetRepositoryWithTx(tx Queryable) interfaces.BetRepository {
	return &betRepository{q: tx}
}

func (r *betRepository) Create(ctx context.Context, bet *entities.Bet) error {
	query := `
		INSERT INTO bets (user_id, bet_type, status, stake, odds, potential_payout,
			home_team, away_team, team_selection, spread_selection, spread_value,
			over_under_selection, total_points, event_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`

	err := r.q.QueryRow(ctx, query,
		bet.UserID,
		bet.BetType,
		bet.Status,
		bet.Stake,
		bet.Odds,
		bet.PotentialPayout,
		bet.HomeTeam,
		bet.AwayTeam,
		sideValue(bet.TeamSelection),
		sideValue(bet.SpreadSelection),
		bet.SpreadValue,
		ouValue(bet.OverUnderSelection),
		bet.TotalPoints,
		bet.EventID,
	).Scan(&bet.ID, &bet.CreatedAt, &bet.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bet: %w", err)
	}

	for _, leg := range bet.Legs {
		leg.BetID = bet.ID
		if err := r.createLeg(ctx, leg); err != nil {
			return err
		}
	}

	return nil
}

func (r *betRepository) createLeg(ctx context.Context, leg *entities.BetLeg) error {
	query := `
		INSERT INTO bet_legs (bet_id, bet_type, odds, home_team, away_team,
			team_selection, spread_selection, spread_value, over_under_selection,
			total_points, event_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		leg.BetID,
		leg.BetType,
		leg.Odds,
		leg.HomeTeam,
		leg.AwayTeam,
		sideValue(leg.TeamSelection),
		sideValue(leg.SpreadSelection),
		leg.SpreadValue,
		ouValue(leg.OverUnderSelection),
		leg.TotalPoints,
		leg.EventID,
	).Scan(&leg.ID, &leg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bet leg: %w", err)
	}
	return nil
}

func (r *betRepository) GetByID(ctx context.Context, id int64) (*entities.Bet, error) {
	query := fmt.Sprintf(`SELECT %s FROM bets WHERE id = $1`, betColumns)

	bet, err := scanBet(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bet: %w", err)
	}

	if bet.BetType == entities.BetTypeParlay {
		if err := r.loadLegs(ctx, []*entities.Bet{bet}); err != nil {
			return nil, err
		}
	}

	return bet, nil
}

func (r *betRepository) ListPending(ctx context.Context) ([]*entities.Bet, error) {
	query := fmt.Sprintf(`SELECT %s FROM bets WHERE status = $1 ORDER BY created_at`, betColumns)

	rows, err := r.q.Query(ctx, query, entities.BetStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending bets: %w", err)
	}
	defer rows.Close()

	var bets []*entities.Bet
	var parlays []*entities.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
		if bet.BetType == entities.BetTypeParlay {
			parlays = append(parlays, bet)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending bets: %w", err)
	}

	if err := r.loadLegs(ctx, parlays); err != nil {
		return nil, err
	}

	return bets, nil
}

func (r *betRepository) MarkSettled(ctx context.Context, bet *entities.Bet) error {
	// The status guard makes settlement at-most-once: a bet that already
	// left pending is never overwritten.
	query := `
		UPDATE bets
		SET status = $1, result_amount = $2, settlement_reason = $3,
		    settled_at = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6`

	tag, err := r.q.Exec(ctx, query,
		bet.Status,
		bet.ResultAmount,
		bet.SettlementReason,
		bet.SettledAt,
		bet.ID,
		entities.BetStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to mark bet %d settled: %w", bet.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrAlreadySettled
	}
	return nil
}

func (r *betRepository) MarkNeedsReview(ctx context.Context, betID int64, reason string) error {
	query := `
		UPDATE bets
		SET status = $1, settlement_reason = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4`

	tag, err := r.q.Exec(ctx, query,
		entities.BetStatusNeedsReview,
		reason,
		betID,
		entities.BetStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to mark bet %d for review: %w", betID, err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrAlreadySettled
	}
	return nil
}

// loadLegs attaches legs to the given parlay bets in one query
func (r *betRepository) loadLegs(ctx context.Context, parlays []*entities.Bet) error {
	if len(parlays) == 0 {
		return nil
	}

	ids := make([]int64, len(parlays))
	byID := make(map[int64]*entities.Bet, len(parlays))
	for i, bet := range parlays {
		ids[i] = bet.ID
		byID[bet.ID] = bet
	}

	query := `
		SELECT id, bet_id, bet_type, odds, home_team, away_team, team_selection,
		       spread_selection, spread_value, over_under_selection, total_points,
		       event_id, created_at
		FROM bet_legs
		WHERE bet_id = ANY($1)
		ORDER BY bet_id, id`

	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query bet legs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var leg entities.BetLeg
		var teamSel, spreadSel, ouSel *string
		err := rows.Scan(
			&leg.ID,
			&leg.BetID,
			&leg.BetType,
			&leg.Odds,
			&leg.HomeTeam,
			&leg.AwayTeam,
			&teamSel,
			&spreadSel,
			&leg.SpreadValue,
			&ouSel,
			&leg.TotalPoints,
			&leg.EventID,
			&leg.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to scan bet leg: %w", err)
		}
		leg.TeamSelection = sideFrom(teamSel)
		leg.SpreadSelection = sideFrom(spreadSel)
		leg.OverUnderSelection = ouFrom(ouSel)

		if bet, ok := byID[leg.BetID]; ok {
			bet.Legs = append(bet.Legs, &leg)
		}
	}
	return rows.Err()
}

func scanBet(row pgx.Row) (*entities.Bet, error) {
	var bet entities.Bet
	var teamSel, spreadSel, ouSel *string
	err := row.Scan(
		&bet.ID,
		&bet.UserID,
		&bet.BetType,
		&bet.Status,
		&bet.Stake,
		&bet.Odds,
		&bet.PotentialPayout,
		&bet.ResultAmount,
		&bet.SettlementReason,
		&bet.HomeTeam,
		&bet.AwayTeam,
		&teamSel,
		&spreadSel,
		&bet.SpreadValue,
		&ouSel,
		&bet.TotalPoints,
		&bet.EventID,
		&bet.SettledAt,
		&bet.CreatedAt,
		&bet.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	bet.TeamSelection = sideFrom(teamSel)
	bet.SpreadSelection = sideFrom(spreadSel)
	bet.OverUnderSelection = ouFrom(ouSel)
	return &bet, nil
}

func sideValue(s *entities.TeamSide) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func sideFrom(s *string) *entities.TeamSide {
	if s == nil {
		return nil
	}
	v := entities.TeamSide(*s)
	return &v
}

func ouValue(o *entities.OverUnder) *string {
	if o == nil {
		return nil
	}
	v := string(*o)
	return &v
}

func ouFrom(s *string) *entities.OverUnder {
	if s == nil {
		return nil
	}
	v := entities.OverUnder(*s)
	return &v
}
