package scoring

import (
	"fmt"
	"log/slog"

	platformstrings "kredi/pkg/platform/strings"
)

// Engine runs the scoring pipeline. It is safe for concurrent use: the config
// and derived weight tables are read-only after construction and every
// evaluation is a pure function of its input.
type Engine struct {
	cfg         *EngineConfig
	boost       BoostPolicy
	flatWeights map[string]float64
	logger      *slog.Logger
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithBoostPolicy replaces the default threshold policy, e.g. for tests or
// partner-specific certification rules.
func WithBoostPolicy(policy BoostPolicy) Option {
	return func(e *Engine) {
		e.boost = policy
	}
}

// NewEngine validates the configuration and builds an engine. A config error
// here is fatal by design: a malformed table would silently corrupt every
// subsequent score, so it must never reach request time.
func NewEngine(cfg *EngineConfig, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("engine config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	e := &Engine{
		cfg:         cfg,
		boost:       ThresholdBoostPolicy(cfg),
		flatWeights: FlattenFeatureWeights(cfg),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Evaluate scores one borrower snapshot. It never fails: missing features,
// unknown attributes, and out-of-range values all degrade to a complete,
// bounded result with explanatory entries in Recommendations.
func (e *Engine) Evaluate(input Input) (*ScoreResult, *CreditRecommendation) {
	features, warnings := NormalizeAll(e.cfg, input.Attributes)
	subScores := AggregateCategories(e.cfg, features)

	points := CertifyFeatures(features, input.AuxTrustScore, e.boost, e.cfg.Coefficients)
	weighted := CalculateWeightedScore(points, e.flatWeights)
	synthesis := Synthesize(e.cfg, subScores, weighted.OverallCertainty)

	result := &ScoreResult{
		FinalScore:       synthesis.FinalScore,
		Grade:            synthesis.Grade,
		RiskTier:         synthesis.RiskTier,
		TrustLevel:       e.trustLevel(points),
		OverallCertainty: weighted.OverallCertainty,
		RawScore:         weighted.RawScore,
		CertifiedScore:   weighted.CertifiedScore,
		CategoryScores:   subScores,
		SourceBreakdown:  sourceBreakdown(points),
		Recommendations:  e.buildRecommendations(features, weighted, warnings),
	}

	rec := Recommend(e.cfg, float64(result.FinalScore), result.OverallCertainty)

	if e.logger != nil {
		e.logger.Debug("score evaluated",
			"final_score", result.FinalScore,
			"grade", result.Grade,
			"risk_tier", result.RiskTier,
			"certainty", result.OverallCertainty,
			"approved", rec.Approved,
		)
	}
	return result, &rec
}

// trustLevel summarizes collected proof tiers into the borrower-facing label.
// Evaluated top-down like the other ladders.
func (e *Engine) trustLevel(points []CertifiedDataPoint) TrustLevel {
	var hard, soft int
	for _, p := range points {
		switch {
		case p.IsCertified || e.cfg.Coefficients.Tier(p.Source) == TierHardProof:
			hard++
		case e.cfg.Coefficients.Tier(p.Source) == TierSoftProof:
			soft++
		}
	}
	switch {
	case hard >= 5 && soft >= 2:
		return TrustGold
	case hard >= 3:
		return TrustCertified
	case hard >= 1:
		return TrustVerified
	case soft >= 1:
		return TrustBasic
	default:
		return TrustUnverified
	}
}

func sourceBreakdown(points []CertifiedDataPoint) map[SourceType]int {
	breakdown := make(map[SourceType]int)
	for _, p := range points {
		breakdown[p.Source]++
	}
	return breakdown
}

// buildRecommendations assembles the human-readable rationale: normalizer
// warnings first, then certainty and coverage prompts. Order is deterministic
// within each group: warnings arrive in attribute-name order and categories
// iterate in fixed order.
func (e *Engine) buildRecommendations(features []Feature, weighted WeightedScore, warnings []string) []string {
	recs := make([]string, 0, len(warnings)+2)
	recs = append(recs, warnings...)

	if weighted.OverallCertainty < e.cfg.CertaintyThreshold {
		recs = append(recs, "provide document, SMS, or API-verified proof to raise score certainty")
	}

	present := make(map[Category]bool)
	for _, f := range features {
		for cat, weights := range e.cfg.CategoryFeatures {
			if _, ok := weights[f.ID]; ok {
				present[cat] = true
			}
		}
	}
	for _, cat := range Categories() {
		if len(e.cfg.CategoryFeatures[cat]) > 0 && !present[cat] {
			recs = append(recs, fmt.Sprintf("no %s data was provided; a neutral default was used", cat))
		}
	}
	// Normalizer warnings can repeat when several attributes trip the same
	// rule; callers get each prompt once.
	return platformstrings.DedupeAndTrim(recs)
}
