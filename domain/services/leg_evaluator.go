package services

import (
	"fmt"

	"bookie/domain/entities"

	log "github.com/sirupsen/logrus"
)

const reasonAwaitingScore = "awaiting final score"

// LegEvaluator contains the pure decision logic for a single bet leg.
// It holds no state and performs no I/O.
type LegEvaluator struct{}

// NewLegEvaluator creates a new LegEvaluator
func NewLegEvaluator() *LegEvaluator {
	return &LegEvaluator{}
}

// EvaluateLeg computes the verdict for one leg against a game result.
// A missing or incomplete result is an expected transient state and maps
// to a pending verdict, never an error: the poll loop will come back.
func (e *LegEvaluator) EvaluateLeg(leg *entities.BetLeg, result *entities.GameResult) (entities.Verdict, string) {
	if result == nil || !result.Completed {
		return entities.VerdictPending, reasonAwaitingScore
	}

	homeScore, homeOK := result.ScoreFor(leg.HomeTeam)
	awayScore, awayOK := result.ScoreFor(leg.AwayTeam)
	if !homeOK || !awayOK {
		// Score reporting can lag the completed flag, and a renamed team
		// is a data-quality problem rather than a settlement outcome.
		log.WithFields(log.Fields{
			"eventID":  leg.EventID,
			"homeTeam": leg.HomeTeam,
			"awayTeam": leg.AwayTeam,
		}).Warn("completed game is missing a recorded team name, leaving leg pending")
		return entities.VerdictPending, reasonAwaitingScore
	}

	switch leg.BetType {
	case entities.BetTypeMoneyline:
		return e.evaluateMoneyline(leg, homeScore, awayScore)
	case entities.BetTypeSpread:
		return e.evaluateSpread(leg, homeScore, awayScore)
	case entities.BetTypeTotal:
		return e.evaluateTotal(leg, homeScore, awayScore)
	}

	// Unknown leg types are caught by Bet.Validate before evaluation
	return entities.VerdictPending, fmt.Sprintf("unsupported bet type %q", leg.BetType)
}

func (e *LegEvaluator) evaluateMoneyline(leg *entities.BetLeg, homeScore, awayScore float64) (entities.Verdict, string) {
	score := fmt.Sprintf("%s %g - %s %g", leg.HomeTeam, homeScore, leg.AwayTeam, awayScore)

	if homeScore == awayScore {
		return entities.VerdictPushed, fmt.Sprintf("Push: %s ended in a tie", score)
	}

	winner := leg.HomeTeam
	if awayScore > homeScore {
		winner = leg.AwayTeam
	}

	if winner == leg.SelectedTeam() {
		return entities.VerdictWon, fmt.Sprintf("Won: %s won (%s)", winner, score)
	}
	return entities.VerdictLost, fmt.Sprintf("Lost: %s lost (%s)", leg.SelectedTeam(), score)
}

func (e *LegEvaluator) evaluateSpread(leg *entities.BetLeg, homeScore, awayScore float64) (entities.Verdict, string) {
	// The stored spread is signed from the selected team's perspective
	// (negative for the favorite) and is always added to that team's
	// score. No sign inference happens here.
	spread := *leg.SpreadValue

	var selected, opponent string
	var adjusted, opponentScore float64
	if *leg.SpreadSelection == entities.TeamSideHome {
		selected, opponent = leg.HomeTeam, leg.AwayTeam
		adjusted, opponentScore = homeScore+spread, awayScore
	} else {
		selected, opponent = leg.AwayTeam, leg.HomeTeam
		adjusted, opponentScore = awayScore+spread, homeScore
	}

	line := fmt.Sprintf("%s %s", selected, formatSpread(spread))
	score := fmt.Sprintf("%s %g - %s %g", leg.HomeTeam, homeScore, leg.AwayTeam, awayScore)

	switch {
	case adjusted > opponentScore:
		return entities.VerdictWon, fmt.Sprintf("Won: %s covered against %s (%s)", line, opponent, score)
	case adjusted < opponentScore:
		return entities.VerdictLost, fmt.Sprintf("Lost: %s did not cover against %s (%s)", line, opponent, score)
	}
	return entities.VerdictPushed, fmt.Sprintf("Push: %s landed on the line (%s)", line, score)
}

func (e *LegEvaluator) evaluateTotal(leg *entities.BetLeg, homeScore, awayScore float64) (entities.Verdict, string) {
	total := homeScore + awayScore
	line := *leg.TotalPoints
	direction := *leg.OverUnderSelection

	summary := fmt.Sprintf("%s %g on %s vs %s, final total %g", direction, line, leg.HomeTeam, leg.AwayTeam, total)

	if total == line {
		return entities.VerdictPushed, fmt.Sprintf("Push: total landed exactly on %g (%s vs %s)", line, leg.HomeTeam, leg.AwayTeam)
	}

	wentOver := total > line
	if (direction == entities.OverUnderOver) == wentOver {
		return entities.VerdictWon, "Won: " + summary
	}
	return entities.VerdictLost, "Lost: " + summary
}

func formatSpread(spread float64) string {
	if spread > 0 {
		return fmt.Sprintf("+%g", spread)
	}
	return fmt.Sprintf("%g", spread)
}
