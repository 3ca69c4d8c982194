package scoring

// BoostPolicy decides whether a data point from the given source should be
// certified at the hard-proof coefficient based on the auxiliary trust signal
// (a 0-100 phone/identity trust score). Keeping the rule a standalone
// function lets boosting policies be swapped and tested independently of the
// aggregation math.
type BoostPolicy func(source SourceType, auxTrust float64) bool

// ThresholdBoostPolicy certifies boost-eligible sources once the auxiliary
// trust score meets the configured threshold. Sources already at the
// hard-proof ceiling are not eligible; boosting them would be a no-op.
func ThresholdBoostPolicy(cfg *EngineConfig) BoostPolicy {
	return func(source SourceType, auxTrust float64) bool {
		return cfg.BoostEligible[source] && auxTrust >= cfg.BoostTrustThreshold
	}
}

// ApplyFeatureCertainty derives the certified data point for one feature.
// The coefficient starts at the source's base mapping and may only be raised:
// a certified point gets the hard-proof coefficient, and the max guards the
// invariant should a table ever map a source above it.
func ApplyFeatureCertainty(f Feature, certified bool, table CoefficientTable) CertifiedDataPoint {
	coeff := table.Coefficient(f.Source)
	if certified {
		coeff = max(coeff, CoefficientHardProof)
	}
	return CertifiedDataPoint{
		FeatureID:            f.ID,
		Label:                f.Label,
		Value:                f.Value,
		Source:               f.Source,
		IsCertified:          certified,
		CertaintyCoefficient: coeff,
	}
}

// CertifyFeatures applies the boost policy across the feature set. A nil
// auxTrust means no auxiliary signal was provided and nothing is boosted.
func CertifyFeatures(features []Feature, auxTrust *float64, policy BoostPolicy, table CoefficientTable) []CertifiedDataPoint {
	points := make([]CertifiedDataPoint, 0, len(features))
	for _, f := range features {
		certified := false
		if auxTrust != nil && policy != nil {
			certified = policy(f.Source, *auxTrust)
		}
		points = append(points, ApplyFeatureCertainty(f, certified, table))
	}
	return points
}

// WeightedScore is the certainty calculator's output for one request.
type WeightedScore struct {
	// RawScore is the weighted feature average ignoring certainty: what the
	// score would be if all data were trusted equally.
	RawScore float64
	// CertifiedScore is the certainty-weighted average, renormalized by the
	// certainty-weighted weight sum so it stays on the same 0-100 scale.
	// Renormalizing rather than naively discounting avoids systematically
	// penalizing borrowers with fewer data points; the trust discount itself
	// is the synthesizer's certainty penalty, not this value.
	CertifiedScore float64
	// OverallCertainty is the feature-weight-weighted average coefficient.
	OverallCertainty float64
}

// CalculateWeightedScore folds certified data points into the raw score,
// certified score, and overall certainty index. Weights are the per-feature
// weights; points without a weight entry contribute nothing. All outputs are
// bounded: scores in [0,100], certainty in [0,1].
func CalculateWeightedScore(points []CertifiedDataPoint, weights map[string]float64) WeightedScore {
	var (
		rawSum, certSum       float64
		weightSum, certWeight float64
		coeffSum              float64
	)
	for _, p := range points {
		w, ok := weights[p.FeatureID]
		if !ok || w == 0 {
			continue
		}
		rawSum += p.Value * w
		certSum += p.Value * w * p.CertaintyCoefficient
		weightSum += w
		certWeight += w * p.CertaintyCoefficient
		coeffSum += p.CertaintyCoefficient * w
	}
	if weightSum == 0 {
		// No weighted data at all: neutral score, zero certainty.
		return WeightedScore{RawScore: NeutralSubScore, CertifiedScore: NeutralSubScore}
	}

	ws := WeightedScore{
		RawScore:         clamp(rawSum/weightSum, 0, 100),
		OverallCertainty: clamp(coeffSum/weightSum, 0, 1),
	}
	if certWeight == 0 {
		// Every coefficient was zero; fall back to the raw average rather
		// than dividing by zero.
		ws.CertifiedScore = ws.RawScore
		return ws
	}
	ws.CertifiedScore = clamp(certSum/certWeight, 0, 100)
	return ws
}

// FlattenFeatureWeights merges the per-category feature weight tables into a
// single feature-to-weight map, scaling each feature's weight by its
// category's top-level weight so cross-category certainty averaging reflects
// category importance.
func FlattenFeatureWeights(cfg *EngineConfig) map[string]float64 {
	flat := make(map[string]float64)
	for cat, features := range cfg.CategoryFeatures {
		catWeight := cfg.CategoryWeights[cat]
		for id, w := range features {
			flat[id] = w * catWeight
		}
	}
	return flat
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
