package entities

import (
	"fmt"
	"time"
)

// BetType represents the kind of wager placed
type BetType string

const (
	BetTypeMoneyline BetType = "moneyline"
	BetTypeSpread    BetType = "spread"
	BetTypeTotal     BetType = "total"
	BetTypeParlay    BetType = "parlay"
)

// BetStatus represents the lifecycle state of a bet
type BetStatus string

const (
	BetStatusPending     BetStatus = "pending"
	BetStatusWon         BetStatus = "won"
	BetStatusLost        BetStatus = "lost"
	BetStatusPushed      BetStatus = "pushed"
	BetStatusCancelled   BetStatus = "cancelled"
	BetStatusNeedsReview BetStatus = "needs_review"
)

// TeamSide identifies which side of a matchup a selection refers to
type TeamSide string

const (
	TeamSideHome TeamSide = "home"
	TeamSideAway TeamSide = "away"
)

// OverUnder identifies the direction of a totals selection
type OverUnder string

const (
	OverUnderOver  OverUnder = "over"
	OverUnderUnder OverUnder = "under"
)

// Bet represents a placed wager awaiting or past settlement
type Bet struct {
	ID                 int64      `db:"id"`
	UserID             int64      `db:"user_id"`
	BetType            BetType    `db:"bet_type"`
	Status             BetStatus  `db:"status"`
	Stake              float64    `db:"stake"`
	Odds               int        `db:"odds"`
	PotentialPayout    float64    `db:"potential_payout"`
	ResultAmount       *float64   `db:"result_amount"`
	SettlementReason   *string    `db:"settlement_reason"`
	HomeTeam           string     `db:"home_team"`
	AwayTeam           string     `db:"away_team"`
	TeamSelection      *TeamSide  `db:"team_selection"`
	SpreadSelection    *TeamSide  `db:"spread_selection"`
	SpreadValue        *float64   `db:"spread_value"`
	OverUnderSelection *OverUnder `db:"over_under_selection"`
	TotalPoints        *float64   `db:"total_points"`
	EventID            string     `db:"event_id"`
	Legs               []*BetLeg  `db:"-"`
	SettledAt          *time.Time `db:"settled_at"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

// BetLeg represents one selection inside a parlay. A straight bet is
// evaluated through the same shape via StraightLeg.
type BetLeg struct {
	ID                 int64      `db:"id"`
	BetID              int64      `db:"bet_id"`
	BetType            BetType    `db:"bet_type"`
	Odds               int        `db:"odds"`
	HomeTeam           string     `db:"home_team"`
	AwayTeam           string     `db:"away_team"`
	TeamSelection      *TeamSide  `db:"team_selection"`
	SpreadSelection    *TeamSide  `db:"spread_selection"`
	SpreadValue        *float64   `db:"spread_value"`
	OverUnderSelection *OverUnder `db:"over_under_selection"`
	TotalPoints        *float64   `db:"total_points"`
	EventID            string     `db:"event_id"`
	CreatedAt          time.Time  `db:"created_at"`
}

// IsTerminal reports whether the bet has reached a final state and must
// never be re-settled.
func (b *Bet) IsTerminal() bool {
	switch b.Status {
	case BetStatusWon, BetStatusLost, BetStatusPushed, BetStatusCancelled, BetStatusNeedsReview:
		return true
	}
	return false
}

// IsParlay reports whether the bet is a multi-leg parlay
func (b *Bet) IsParlay() bool {
	return b.BetType == BetTypeParlay
}

// StraightLeg returns the bet's own selection viewed as a single leg
func (b *Bet) StraightLeg() *BetLeg {
	return &BetLeg{
		BetID:              b.ID,
		BetType:            b.BetType,
		Odds:               b.Odds,
		HomeTeam:           b.HomeTeam,
		AwayTeam:           b.AwayTeam,
		TeamSelection:      b.TeamSelection,
		SpreadSelection:    b.SpreadSelection,
		SpreadValue:        b.SpreadValue,
		OverUnderSelection: b.OverUnderSelection,
		TotalPoints:        b.TotalPoints,
		EventID:            b.EventID,
	}
}

// SettlementLegs returns every leg that must resolve before the bet can
// settle: the parlay's legs, or the bet itself as a single leg.
func (b *Bet) SettlementLegs() []*BetLeg {
	if b.IsParlay() {
		return b.Legs
	}
	return []*BetLeg{b.StraightLeg()}
}

// SelectedTeam returns the team name a moneyline selection points at
func (l *BetLeg) SelectedTeam() string {
	if l.TeamSelection != nil && *l.TeamSelection == TeamSideAway {
		return l.AwayTeam
	}
	return l.HomeTeam
}

// Validate checks that the bet carries a properly typed selection for its
// bet type. Selections are captured once at placement time; settlement
// refuses records that would require guessing.
func (b *Bet) Validate() error {
	if b.Stake <= 0 {
		return fmt.Errorf("%w: stake must be positive", ErrInvalidBetData)
	}

	if b.IsParlay() {
		if len(b.Legs) < 2 {
			return fmt.Errorf("%w: parlay requires at least 2 legs", ErrInvalidBetData)
		}
		for i, leg := range b.Legs {
			if err := leg.Validate(); err != nil {
				return fmt.Errorf("leg %d: %w", i+1, err)
			}
		}
		return nil
	}

	if b.Odds == 0 {
		return fmt.Errorf("%w: odds are required", ErrInvalidBetData)
	}
	return b.StraightLeg().Validate()
}

// Validate checks a single leg's selection fields
func (l *BetLeg) Validate() error {
	if l.HomeTeam == "" || l.AwayTeam == "" {
		return fmt.Errorf("%w: home and away team names are required", ErrInvalidBetData)
	}
	if l.EventID == "" {
		return fmt.Errorf("%w: event id is required", ErrInvalidBetData)
	}
	if l.Odds == 0 {
		return fmt.Errorf("%w: odds are required", ErrInvalidBetData)
	}

	switch l.BetType {
	case BetTypeMoneyline:
		if l.TeamSelection == nil {
			return fmt.Errorf("%w: moneyline bet missing team selection", ErrInvalidBetData)
		}
	case BetTypeSpread:
		if l.SpreadSelection == nil {
			return fmt.Errorf("%w: spread bet missing spread selection", ErrInvalidBetData)
		}
		if l.SpreadValue == nil {
			return fmt.Errorf("%w: spread bet missing spread value", ErrInvalidBetData)
		}
	case BetTypeTotal:
		if l.OverUnderSelection == nil {
			return fmt.Errorf("%w: total bet missing over/under selection", ErrInvalidBetData)
		}
		if l.TotalPoints == nil || *l.TotalPoints <= 0 {
			return fmt.Errorf("%w: total bet missing points line", ErrInvalidBetData)
		}
	default:
		return fmt.Errorf("%w: unsupported leg type %q", ErrInvalidBetData, l.BetType)
	}
	return nil
}
