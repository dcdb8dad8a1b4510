package repository

import (
	"context"
	"testing"
	"time"

	"bookie/domain/entities"
	"bookie/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementRunRepository_RecordAndListRecent(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	repo := NewSettlementRunRepository(testDB.DB)

	first := entities.NewSettlementRun()
	first.StartedAt = time.Now().UTC().Add(-10 * time.Minute)
	first.Checked = 3
	first.Settled = 2
	first.StillPending = 1
	first.Finish()
	require.NoError(t, repo.Record(ctx, first))
	require.False(t, first.CreatedAt.IsZero())

	second := entities.NewSettlementRun()
	second.Checked = 5
	second.Settled = 3
	second.NeedsReview = 1
	second.Errors = 1
	second.Finish()
	require.NoError(t, repo.Record(ctx, second))

	runs, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest run first
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, 5, runs[0].Checked)
	assert.Equal(t, 1, runs[0].Errors)
	require.NotNil(t, runs[0].FinishedAt)

	assert.Equal(t, first.ID, runs[1].ID)
	assert.Equal(t, 2, runs[1].Settled)

	limited, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second.ID, limited[0].ID)
}
