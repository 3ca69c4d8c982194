//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kredi/internal/scoring"
	"kredi/pkg/domain"
	"kredi/pkg/platform/sentinel"
	"kredi/pkg/testutil/containers"
)

func TestRedisResultCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rc := containers.NewRedisContainer(t)

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		cache := NewRedisCache(rc.Client, time.Minute)

		record := &scoring.Record{
			ID:         domain.NewScoreID(),
			BorrowerID: domain.NewBorrowerID(),
			Result:     scoring.ScoreResult{FinalScore: 64, Grade: scoring.GradeC},
			CreatedAt:  time.Now().UTC().Truncate(time.Second),
		}
		require.NoError(t, cache.SetLatest(ctx, record))

		got, err := cache.GetLatest(ctx, record.BorrowerID)
		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.Equal(t, 64, got.Result.FinalScore)
	})

	t.Run("miss returns not found", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		cache := NewRedisCache(rc.Client, time.Minute)

		_, err := cache.GetLatest(ctx, domain.NewBorrowerID())
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("entries expire", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		cache := NewRedisCache(rc.Client, 500*time.Millisecond)

		record := &scoring.Record{ID: domain.NewScoreID(), BorrowerID: domain.NewBorrowerID()}
		require.NoError(t, cache.SetLatest(ctx, record))

		time.Sleep(time.Second)
		_, err := cache.GetLatest(ctx, record.BorrowerID)
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}
