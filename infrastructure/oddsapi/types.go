package oddsapi

// scoreEntry is one team's line in an event's scores array. The provider
// reports scores as strings and in no guaranteed order.
type scoreEntry struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

// eventScore is one event in the provider's scores response
type eventScore struct {
	ID           string       `json:"id"`
	SportKey     string       `json:"sport_key"`
	CommenceTime string       `json:"commence_time"`
	Completed    bool         `json:"completed"`
	HomeTeam     string       `json:"home_team"`
	AwayTeam     string       `json:"away_team"`
	Scores       []scoreEntry `json:"scores"`
	LastUpdate   string       `json:"last_update"`
}
