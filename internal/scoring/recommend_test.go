package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("declines below the score floor regardless of certainty", func(t *testing.T) {
		rec := Recommend(cfg, 20, 0.9)
		assert.False(t, rec.Approved)
		assert.Zero(t, rec.MaxAmount)
		assert.Zero(t, rec.MaxTenorMonths)
		require.NotEmpty(t, rec.Conditions)
		assert.Contains(t, rec.Conditions[0], "below the minimum")
	})

	t.Run("declines below the certainty floor regardless of score", func(t *testing.T) {
		rec := Recommend(cfg, 85, 0.1)
		assert.False(t, rec.Approved)
		require.Len(t, rec.Conditions, 1)
		assert.Contains(t, rec.Conditions[0], "certainty is too low")
	})

	t.Run("lists both declining factors when both fail", func(t *testing.T) {
		rec := Recommend(cfg, 10, 0.1)
		assert.False(t, rec.Approved)
		assert.Len(t, rec.Conditions, 2)
	})

	t.Run("full tier at high score and certainty", func(t *testing.T) {
		rec := Recommend(cfg, 72, 0.9)
		assert.True(t, rec.Approved)
		assert.Equal(t, 24, rec.MaxTenorMonths)
		// Ceiling 300k at score 72, multiplier 0.5 + 0.9*0.5 = 0.95.
		assert.InDelta(t, 285_000, rec.MaxAmount, 1e-6)
		assert.NotContains(t, rec.Conditions, "additional verification recommended")
	})

	t.Run("full tier with low certainty adds verification condition", func(t *testing.T) {
		rec := Recommend(cfg, 72, 0.5)
		assert.True(t, rec.Approved)
		assert.Contains(t, rec.Conditions, "additional verification recommended")
	})

	t.Run("guided tier requires a guarantor", func(t *testing.T) {
		rec := Recommend(cfg, 60, 0.8)
		assert.True(t, rec.Approved)
		assert.Equal(t, 12, rec.MaxTenorMonths)
		assert.Contains(t, rec.Conditions, "guarantor recommended")
	})

	t.Run("starter tier requires collateral", func(t *testing.T) {
		rec := Recommend(cfg, 40, 0.8)
		assert.True(t, rec.Approved)
		assert.Equal(t, 6, rec.MaxTenorMonths)
		assert.Contains(t, rec.Conditions, "collateral required")
	})

	t.Run("certainty dampens but never zeroes an approved ceiling", func(t *testing.T) {
		rec := Recommend(cfg, 80, cfg.MinApprovalCertainty)
		assert.True(t, rec.Approved)
		assert.Greater(t, rec.MaxAmount, 0.0)
		// Never less than half the base ceiling.
		assert.GreaterOrEqual(t, rec.MaxAmount, matchBand(cfg.CeilingBands, 80)*0.5)
	})

	t.Run("rate is a step function of score alone", func(t *testing.T) {
		assert.Equal(t, Recommend(cfg, 75, 0.4).SuggestedRate, Recommend(cfg, 75, 1.0).SuggestedRate)
		assert.Less(t, Recommend(cfg, 95, 1).SuggestedRate, Recommend(cfg, 56, 1).SuggestedRate)
	})
}

// TestRecommendLadderExhaustive sweeps the (score, certainty) grid and checks
// the ladder is a total deterministic function: every pair produces exactly
// one well-formed outcome, identical on re-evaluation.
func TestRecommendLadderExhaustive(t *testing.T) {
	cfg := DefaultConfig()

	for score := 0; score <= 100; score++ {
		for c := 0; c <= 20; c++ {
			certainty := float64(c) / 20
			rec := Recommend(cfg, float64(score), certainty)
			again := Recommend(cfg, float64(score), certainty)
			require.Equal(t, rec, again, "score=%d certainty=%v", score, certainty)

			if rec.Approved {
				assert.Greater(t, rec.MaxAmount, 0.0, "score=%d certainty=%v", score, certainty)
				assert.Greater(t, rec.MaxTenorMonths, 0, "score=%d certainty=%v", score, certainty)
				assert.Greater(t, rec.SuggestedRate, 0.0, "score=%d certainty=%v", score, certainty)
			} else {
				assert.Zero(t, rec.MaxAmount)
				assert.NotEmpty(t, rec.Conditions, "declines must explain themselves")
			}
		}
	}
}
