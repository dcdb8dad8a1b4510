package services

import (
	"testing"

	"bookie/domain/entities"

	"github.com/stretchr/testify/assert"
)

func sidePtr(s entities.TeamSide) *entities.TeamSide {
	return &s
}

func ouPtr(o entities.OverUnder) *entities.OverUnder {
	return &o
}

func f64Ptr(f float64) *float64 {
	return &f
}

func completedResult(scores ...entities.TeamScore) *entities.GameResult {
	return &entities.GameResult{
		EventID:   "evt-1",
		Completed: true,
		Scores:    scores,
	}
}

func moneylineLeg(selection entities.TeamSide) *entities.BetLeg {
	return &entities.BetLeg{
		BetType:       entities.BetTypeMoneyline,
		Odds:          -110,
		HomeTeam:      "Bills",
		AwayTeam:      "Jets",
		TeamSelection: sidePtr(selection),
		EventID:       "evt-1",
	}
}

func spreadLeg(selection entities.TeamSide, spread float64) *entities.BetLeg {
	return &entities.BetLeg{
		BetType:         entities.BetTypeSpread,
		Odds:            -110,
		HomeTeam:        "Bills",
		AwayTeam:        "Jets",
		SpreadSelection: sidePtr(selection),
		SpreadValue:     f64Ptr(spread),
		EventID:         "evt-1",
	}
}

func totalLeg(direction entities.OverUnder, line float64) *entities.BetLeg {
	return &entities.BetLeg{
		BetType:            entities.BetTypeTotal,
		Odds:               -110,
		HomeTeam:           "Bills",
		AwayTeam:           "Jets",
		OverUnderSelection: ouPtr(direction),
		TotalPoints:        f64Ptr(line),
		EventID:            "evt-1",
	}
}

func TestEvaluateLeg_IncompleteGameIsPending(t *testing.T) {
	evaluator := NewLegEvaluator()

	verdict, reason := evaluator.EvaluateLeg(moneylineLeg(entities.TeamSideHome), &entities.GameResult{
		EventID:   "evt-1",
		Completed: false,
		Scores: []entities.TeamScore{
			{Name: "Bills", Points: 24},
			{Name: "Jets", Points: 20},
		},
	})

	assert.Equal(t, entities.VerdictPending, verdict)
	assert.Equal(t, "awaiting final score", reason)
}

func TestEvaluateLeg_NilResultIsPending(t *testing.T) {
	evaluator := NewLegEvaluator()

	verdict, _ := evaluator.EvaluateLeg(moneylineLeg(entities.TeamSideHome), nil)

	assert.Equal(t, entities.VerdictPending, verdict)
}

func TestEvaluateLeg_MissingTeamNameIsPending(t *testing.T) {
	evaluator := NewLegEvaluator()

	// Provider reports a renamed team; score for "Bills" cannot be found
	verdict, reason := evaluator.EvaluateLeg(moneylineLeg(entities.TeamSideHome), completedResult(
		entities.TeamScore{Name: "Buffalo", Points: 24},
		entities.TeamScore{Name: "Jets", Points: 20},
	))

	assert.Equal(t, entities.VerdictPending, verdict)
	assert.Equal(t, "awaiting final score", reason)
}

func TestEvaluateLeg_MoneylineMatchesByNameNotOrder(t *testing.T) {
	evaluator := NewLegEvaluator()

	// Away team listed first: a positional reading would flip the winner
	result := completedResult(
		entities.TeamScore{Name: "Jets", Points: 20},
		entities.TeamScore{Name: "Bills", Points: 24},
	)

	verdict, reason := evaluator.EvaluateLeg(moneylineLeg(entities.TeamSideHome), result)
	assert.Equal(t, entities.VerdictWon, verdict)
	assert.Contains(t, reason, "Bills")

	verdict, _ = evaluator.EvaluateLeg(moneylineLeg(entities.TeamSideAway), result)
	assert.Equal(t, entities.VerdictLost, verdict)
}

func TestEvaluateLeg_MoneylineTiePushes(t *testing.T) {
	evaluator := NewLegEvaluator()

	verdict, reason := evaluator.EvaluateLeg(moneylineLeg(entities.TeamSideHome), completedResult(
		entities.TeamScore{Name: "Bills", Points: 17},
		entities.TeamScore{Name: "Jets", Points: 17},
	))

	assert.Equal(t, entities.VerdictPushed, verdict)
	assert.Contains(t, reason, "tie")
}

func TestEvaluateLeg_SpreadSignConventions(t *testing.T) {
	evaluator := NewLegEvaluator()

	result := completedResult(
		entities.TeamScore{Name: "Bills", Points: 24},
		entities.TeamScore{Name: "Jets", Points: 20},
	)

	tests := []struct {
		name      string
		selection entities.TeamSide
		spread    float64
		expected  entities.Verdict
	}{
		{"home favorite covers", entities.TeamSideHome, -3.5, entities.VerdictWon},    // 24-3.5=20.5 > 20
		{"home favorite misses", entities.TeamSideHome, -4.5, entities.VerdictLost},   // 24-4.5=19.5 < 20
		{"home favorite on the line", entities.TeamSideHome, -4, entities.VerdictPushed}, // 24-4=20
		{"away underdog misses", entities.TeamSideAway, 3.5, entities.VerdictLost},    // 20+3.5=23.5 < 24
		{"away underdog covers", entities.TeamSideAway, 4.5, entities.VerdictWon},     // 20+4.5=24.5 > 24
		{"away underdog on the line", entities.TeamSideAway, 4, entities.VerdictPushed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, _ := evaluator.EvaluateLeg(spreadLeg(tt.selection, tt.spread), result)
			assert.Equal(t, tt.expected, verdict)
		})
	}
}

func TestEvaluateLeg_SpreadReasonNamesTeamsAndScore(t *testing.T) {
	evaluator := NewLegEvaluator()

	verdict, reason := evaluator.EvaluateLeg(spreadLeg(entities.TeamSideHome, -7.5), completedResult(
		entities.TeamScore{Name: "Bills", Points: 24},
		entities.TeamScore{Name: "Jets", Points: 20},
	))

	assert.Equal(t, entities.VerdictLost, verdict)
	assert.Contains(t, reason, "Bills -7.5")
	assert.Contains(t, reason, "24")
	assert.Contains(t, reason, "20")
}

func TestEvaluateLeg_Totals(t *testing.T) {
	evaluator := NewLegEvaluator()

	result := completedResult(
		entities.TeamScore{Name: "Bills", Points: 24},
		entities.TeamScore{Name: "Jets", Points: 20},
	)

	tests := []struct {
		name      string
		direction entities.OverUnder
		line      float64
		expected  entities.Verdict
	}{
		{"over hits", entities.OverUnderOver, 40.5, entities.VerdictWon},
		{"over misses", entities.OverUnderOver, 47.5, entities.VerdictLost},
		{"under hits", entities.OverUnderUnder, 47.5, entities.VerdictWon},
		{"under misses", entities.OverUnderUnder, 40.5, entities.VerdictLost},
		{"over on the number", entities.OverUnderOver, 44, entities.VerdictPushed},
		{"under on the number", entities.OverUnderUnder, 44, entities.VerdictPushed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, _ := evaluator.EvaluateLeg(totalLeg(tt.direction, tt.line), result)
			assert.Equal(t, tt.expected, verdict)
		})
	}
}
