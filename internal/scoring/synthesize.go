package scoring

import "math"

// Synthesis is the synthesizer's output: the composite before and after the
// certainty penalty, plus the taxonomy mappings.
type Synthesis struct {
	CompositeScore float64
	Penalty        float64
	FinalScore     int
	Grade          Grade
	RiskTier       RiskTier
}

// Synthesize combines category sub-scores into the composite, applies the
// certainty penalty, and maps the adjusted score to grade and risk tier.
//
// The composite divides by the sum of the top-level weights, which are
// deliberately not normalized to 1. Missing categories were already replaced
// by the neutral default upstream, so the result is always well-defined.
//
// The certainty penalty is the single mechanism that lowers the reported
// score for low-certainty data; the certified score's renormalization does
// not compound with it (see the package design notes).
func Synthesize(cfg *EngineConfig, subScores []CategorySubScore, overallCertainty float64) Synthesis {
	var sum, weightSum float64
	for _, s := range subScores {
		sum += s.RawValue * s.Weight
		weightSum += s.Weight
	}
	composite := NeutralSubScore
	if weightSum > 0 {
		composite = sum / weightSum
	}

	penalty := math.Max(0, (cfg.CertaintyThreshold-overallCertainty)*cfg.PenaltyScale)
	adjusted := clamp(composite-penalty, 0, 100)
	final := int(math.Round(adjusted))

	return Synthesis{
		CompositeScore: composite,
		Penalty:        penalty,
		FinalScore:     final,
		Grade:          GradeFor(cfg, float64(final)),
		RiskTier:       RiskTierFor(cfg, float64(final)),
	}
}

// GradeFor maps a score to its letter grade via the ordered grade table.
// Pure and deterministic: the same score always yields the same grade.
func GradeFor(cfg *EngineConfig, score float64) Grade {
	return matchBand(cfg.GradeBands, score)
}

// RiskTierFor maps a score to its risk tier via the ordered risk table. The
// tier breakpoints are independent of the grade breakpoints.
func RiskTierFor(cfg *EngineConfig, score float64) RiskTier {
	return matchBand(cfg.RiskBands, score)
}
