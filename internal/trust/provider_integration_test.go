//go:build integration

package trust

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kredi/pkg/domain"
	"kredi/pkg/testutil/containers"
)

func TestRedisProvider(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rc := containers.NewRedisContainer(t)
	provider := NewRedisProvider(rc.Client)

	t.Run("seeded signal is returned", func(t *testing.T) {
		borrowerID := domain.NewBorrowerID()
		require.NoError(t, rc.Client.Set(ctx, "trust:phone:"+borrowerID.String(), 87.5, time.Minute).Err())

		score, found, err := provider.PhoneTrustScore(ctx, borrowerID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 87.5, score)
	})

	t.Run("missing signal is not an error", func(t *testing.T) {
		score, found, err := provider.PhoneTrustScore(ctx, domain.NewBorrowerID())
		require.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, score)
	})

	t.Run("non-numeric value is an error", func(t *testing.T) {
		borrowerID := domain.NewBorrowerID()
		require.NoError(t, rc.Client.Set(ctx, "trust:phone:"+borrowerID.String(), "garbage", time.Minute).Err())

		_, _, err := provider.PhoneTrustScore(ctx, borrowerID)
		require.Error(t, err)
	})
}
