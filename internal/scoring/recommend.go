package scoring

import "fmt"

// Decision ladder tenors, from the longest tier down to the collateral tier.
const (
	tenorFull    = 24
	tenorGuided  = 12
	tenorStarter = 6
)

// recommendRule is one rung of the decision ladder: a predicate and the
// outcome builder that applies when it matches. The ladder is evaluated top
// to bottom and the first match wins, which makes the rule set a total
// deterministic function over (score, certainty).
type recommendRule struct {
	applies func(cfg *EngineConfig, score, certainty float64) bool
	build   func(cfg *EngineConfig, score, certainty float64) CreditRecommendation
}

var decisionLadder = []recommendRule{
	// Rule 1: hard decline on score or certainty floor.
	{
		applies: func(cfg *EngineConfig, score, certainty float64) bool {
			return score < cfg.MinApprovalScore || certainty < cfg.MinApprovalCertainty
		},
		build: func(cfg *EngineConfig, score, certainty float64) CreditRecommendation {
			rec := CreditRecommendation{Conditions: []string{}}
			if score < cfg.MinApprovalScore {
				rec.Conditions = append(rec.Conditions,
					fmt.Sprintf("score %.0f is below the minimum of %.0f", score, cfg.MinApprovalScore))
			}
			if certainty < cfg.MinApprovalCertainty {
				rec.Conditions = append(rec.Conditions,
					"data certainty is too low; provide verified documents or transactional proof")
			}
			return rec
		},
	},
	// Rule 2: full tier.
	{
		applies: func(_ *EngineConfig, score, _ float64) bool { return score >= 70 },
		build: func(cfg *EngineConfig, score, certainty float64) CreditRecommendation {
			rec := approved(cfg, score, certainty, tenorFull)
			if certainty < cfg.CertaintyThreshold {
				rec.Conditions = append(rec.Conditions, "additional verification recommended")
			}
			return rec
		},
	},
	// Rule 3: guided tier.
	{
		applies: func(_ *EngineConfig, score, _ float64) bool { return score >= 55 },
		build: func(cfg *EngineConfig, score, certainty float64) CreditRecommendation {
			rec := approved(cfg, score, certainty, tenorGuided)
			rec.Conditions = append(rec.Conditions, "guarantor recommended")
			return rec
		},
	},
	// Rule 4: starter tier, everything left in [MinApprovalScore, 55).
	{
		applies: func(_ *EngineConfig, _, _ float64) bool { return true },
		build: func(cfg *EngineConfig, score, certainty float64) CreditRecommendation {
			rec := approved(cfg, score, certainty, tenorStarter)
			rec.Conditions = append(rec.Conditions, "collateral required")
			return rec
		},
	},
}

func approved(cfg *EngineConfig, score, certainty float64, tenor int) CreditRecommendation {
	return CreditRecommendation{
		Approved:       true,
		MaxAmount:      matchBand(cfg.CeilingBands, score) * certaintyMultiplier(certainty),
		MaxTenorMonths: tenor,
		SuggestedRate:  matchBand(cfg.RateBands, score),
		Conditions:     []string{},
	}
}

// certaintyMultiplier dampens the credit ceiling for uncertain data without
// ever zeroing it: at zero certainty half the base ceiling is still offered,
// since rule 1 already declined anything below the certainty floor.
func certaintyMultiplier(certainty float64) float64 {
	return 0.5 + clamp(certainty, 0, 1)*0.5
}

// Recommend turns a score and certainty into a bounded credit decision via
// the ladder. The suggested rate is a step function of score alone; certainty
// affects only the ceiling and the attached conditions.
func Recommend(cfg *EngineConfig, score, certainty float64) CreditRecommendation {
	for _, rule := range decisionLadder {
		if rule.applies(cfg, score, certainty) {
			return rule.build(cfg, score, certainty)
		}
	}
	// Unreachable: the last rung always applies.
	return CreditRecommendation{Conditions: []string{}}
}
