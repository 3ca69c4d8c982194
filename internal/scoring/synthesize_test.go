package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func neutralSubScores(cfg *EngineConfig, value float64) []CategorySubScore {
	subScores := make([]CategorySubScore, 0, 6)
	for _, cat := range Categories() {
		subScores = append(subScores, CategorySubScore{
			Category: cat,
			RawValue: value,
			Weight:   cfg.CategoryWeights[cat],
		})
	}
	return subScores
}

func TestSynthesize(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("uniform sub-scores compose to the same value", func(t *testing.T) {
		s := Synthesize(cfg, neutralSubScores(cfg, 80), 1.0)
		assert.InDelta(t, 80.0, s.CompositeScore, 1e-9)
		assert.Zero(t, s.Penalty)
		assert.Equal(t, 80, s.FinalScore)
	})

	t.Run("certainty below threshold applies a penalty", func(t *testing.T) {
		// (0.7 - 0.4) * 10 = 3 points.
		s := Synthesize(cfg, neutralSubScores(cfg, 80), 0.4)
		assert.InDelta(t, 3.0, s.Penalty, 1e-9)
		assert.Equal(t, 77, s.FinalScore)
	})

	t.Run("certainty above threshold applies no penalty", func(t *testing.T) {
		s := Synthesize(cfg, neutralSubScores(cfg, 60), 0.9)
		assert.Zero(t, s.Penalty)
		assert.Equal(t, 60, s.FinalScore)
	})

	t.Run("penalty never pushes the score below zero", func(t *testing.T) {
		s := Synthesize(cfg, neutralSubScores(cfg, 2), 0)
		assert.Equal(t, 0, s.FinalScore)
	})

	t.Run("category weights are combined proportionally", func(t *testing.T) {
		// Identity at 100 with everything else at 0: composite is
		// 0.42 / sum(weights) * 100.
		subScores := neutralSubScores(cfg, 0)
		subScores[0].RawValue = 100

		var weightSum float64
		for _, w := range cfg.CategoryWeights {
			weightSum += w
		}
		s := Synthesize(cfg, subScores, 1.0)
		assert.InDelta(t, 0.42/weightSum*100, s.CompositeScore, 1e-9)
	})

	t.Run("empty sub-score slice stays well-defined", func(t *testing.T) {
		s := Synthesize(cfg, nil, 1.0)
		assert.Equal(t, int(NeutralSubScore), s.FinalScore)
	})
}

func TestGradeAndRiskTier(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("grade breakpoints", func(t *testing.T) {
		cases := []struct {
			score float64
			grade Grade
		}{
			{95, GradeAPlus}, {90, GradeAPlus},
			{89.9, GradeA}, {80, GradeA},
			{79, GradeBPlus}, {70, GradeBPlus},
			{69, GradeB}, {60, GradeB},
			{59, GradeCPlus}, {50, GradeCPlus},
			{49, GradeC}, {40, GradeC},
			{39, GradeD}, {30, GradeD},
			{29, GradeE}, {0, GradeE},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.grade, GradeFor(cfg, tc.score), "score %v", tc.score)
		}
	})

	t.Run("risk tier breakpoints are independent of grades", func(t *testing.T) {
		assert.Equal(t, RiskLow, RiskTierFor(cfg, 65))
		assert.Equal(t, RiskModerate, RiskTierFor(cfg, 64.9))
		assert.Equal(t, RiskModerate, RiskTierFor(cfg, 40))
		assert.Equal(t, RiskHigh, RiskTierFor(cfg, 39.9))
		assert.Equal(t, RiskHigh, RiskTierFor(cfg, 0))
	})

	t.Run("mapping is idempotent across the full range", func(t *testing.T) {
		for score := 0; score <= 100; score++ {
			s := float64(score)
			assert.Equal(t, GradeFor(cfg, s), GradeFor(cfg, s))
			assert.Equal(t, RiskTierFor(cfg, s), RiskTierFor(cfg, s))
		}
	})
}

func TestEngineConfigValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})

	t.Run("rejects negative category weight", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.CategoryWeights[CategoryCashflow] = -0.1
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects out-of-range coefficient", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Coefficients[SourceDeclared] = 1.5
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects empty coefficient table", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Coefficients = CoefficientTable{}
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects feature weight without a spec", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.CategoryFeatures[CategoryCashflow]["ghost_feature"] = 0.2
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects unordered band table", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.GradeBands = []Band[Grade]{
			{Min: 50, Outcome: GradeC},
			{Min: 90, Outcome: GradeAPlus},
			{Min: 0, Outcome: GradeE},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects band table without catch-all", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RiskBands = []Band[RiskTier]{
			{Min: 65, Outcome: RiskLow},
			{Min: 40, Outcome: RiskModerate},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects amount spec without ceiling", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Specs["monthly_income"] = FeatureSpec{Label: "x", Kind: KindAmount}
		assert.Error(t, cfg.Validate())
	})
}
