package entities

// TeamScore is one named score line from the odds provider
type TeamScore struct {
	Name   string
	Points float64
}

// GameResult is a completed (or in-progress) game as reported by the odds
// provider. It is fetched per settlement attempt and never stored.
type GameResult struct {
	EventID   string
	Completed bool
	Scores    []TeamScore
}

// ScoreFor returns the score recorded for the named team. Lookup is by
// exact team name: provider ordering is not guaranteed home-first, so
// positional access is never safe.
func (g *GameResult) ScoreFor(team string) (float64, bool) {
	for _, s := range g.Scores {
		if s.Name == team {
			return s.Points, true
		}
	}
	return 0, false
}
