package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bookie/domain/entities"

	log "github.com/sirupsen/logrus"
)

const defaultTimeout = 15 * time.Second

// Client fetches game results from an Odds-API style scores endpoint.
// It implements interfaces.GameResultProvider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	sportKey   string
}

// NewClient creates a new odds API client
func NewClient(baseURL, apiKey, sportKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		sportKey:   sportKey,
	}
}

// FetchResult returns the score report for one event. A game the
// provider does not know about yet maps to entities.ErrResultUnavailable
// so callers can treat it as still pending.
func (c *Client) FetchResult(ctx context.Context, eventID string) (*entities.GameResult, error) {
	endpoint := fmt.Sprintf("%s/v4/sports/%s/scores", c.baseURL, c.sportKey)

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("eventIds", eventID)
	params.Set("daysFrom", "3")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build scores request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scores request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, entities.ErrResultUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scores request returned status %d", resp.StatusCode)
	}

	var events []eventScore
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode scores response: %w", err)
	}

	for _, event := range events {
		if event.ID == eventID {
			return toGameResult(event), nil
		}
	}

	return nil, entities.ErrResultUnavailable
}

func toGameResult(event eventScore) *entities.GameResult {
	result := &entities.GameResult{
		EventID:   event.ID,
		Completed: event.Completed,
	}

	for _, entry := range event.Scores {
		points, err := strconv.ParseFloat(entry.Score, 64)
		if err != nil {
			log.WithFields(log.Fields{
				"eventID": event.ID,
				"team":    entry.Name,
				"score":   entry.Score,
			}).Warn("skipping unparseable score from provider")
			continue
		}
		result.Scores = append(result.Scores, entities.TeamScore{
			Name:   entry.Name,
			Points: points,
		})
	}

	return result
}
