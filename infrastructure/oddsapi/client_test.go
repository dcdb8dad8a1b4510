package oddsapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookie/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoresPayload = `[
	{
		"id": "evt-1",
		"sport_key": "americanfootball_nfl",
		"completed": %t,
		"home_team": "Buffalo Bills",
		"away_team": "New York Jets",
		"scores": [
			{"name": "New York Jets", "score": "20"},
			{"name": "Buffalo Bills", "score": "24"}
		]
	}
]`

func TestFetchResult_CompletedGame(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/sports/americanfootball_nfl/scores", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "evt-1", r.URL.Query().Get("eventIds"))
		fmt.Fprintf(w, scoresPayload, true)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "americanfootball_nfl")
	result, err := client.FetchResult(context.Background(), "evt-1")

	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Equal(t, "evt-1", result.EventID)

	points, ok := result.ScoreFor("Buffalo Bills")
	assert.True(t, ok)
	assert.Equal(t, 24.0, points)

	points, ok = result.ScoreFor("New York Jets")
	assert.True(t, ok)
	assert.Equal(t, 20.0, points)
}

func TestFetchResult_InProgressGame(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, scoresPayload, false)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "americanfootball_nfl")
	result, err := client.FetchResult(context.Background(), "evt-1")

	require.NoError(t, err)
	assert.False(t, result.Completed)
}

func TestFetchResult_UnknownEventIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "americanfootball_nfl")
	_, err := client.FetchResult(context.Background(), "evt-missing")

	assert.ErrorIs(t, err, entities.ErrResultUnavailable)
}

func TestFetchResult_NotFoundIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "americanfootball_nfl")
	_, err := client.FetchResult(context.Background(), "evt-1")

	assert.ErrorIs(t, err, entities.ErrResultUnavailable)
}

func TestFetchResult_ServerErrorIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "americanfootball_nfl")
	_, err := client.FetchResult(context.Background(), "evt-1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, entities.ErrResultUnavailable)
}

func TestFetchResult_SkipsUnparseableScores(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{
				"id": "evt-1",
				"completed": true,
				"scores": [
					{"name": "Buffalo Bills", "score": "n/a"},
					{"name": "New York Jets", "score": "20"}
				]
			}
		]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "americanfootball_nfl")
	result, err := client.FetchResult(context.Background(), "evt-1")

	require.NoError(t, err)
	_, ok := result.ScoreFor("Buffalo Bills")
	assert.False(t, ok)
	_, ok = result.ScoreFor("New York Jets")
	assert.True(t, ok)
}
