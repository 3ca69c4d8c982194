package scoring

// AggregateCategories groups normalized features into the six fixed categories
// and computes a weighted sub-score per category. Weights renormalize over the
// features actually present, so a missing feature shrinks the denominator
// instead of silently zeroing its share.
//
// A category with no present features yields NeutralSubScore: borrowers
// lacking an entire data channel (no social-capital data, say) must not be
// penalized for it. This function never fails.
func AggregateCategories(cfg *EngineConfig, features []Feature) []CategorySubScore {
	byID := make(map[string]Feature, len(features))
	for _, f := range features {
		byID[f.ID] = f
	}

	subScores := make([]CategorySubScore, 0, len(Categories()))
	for _, cat := range Categories() {
		subScores = append(subScores, CategorySubScore{
			Category: cat,
			RawValue: categoryValue(cfg.CategoryFeatures[cat], byID),
			Weight:   cfg.CategoryWeights[cat],
		})
	}
	return subScores
}

func categoryValue(weights map[string]float64, byID map[string]Feature) float64 {
	var sum, weightSum float64
	for id, w := range weights {
		f, ok := byID[id]
		if !ok {
			continue
		}
		sum += f.Value * w
		weightSum += w
	}
	if weightSum == 0 {
		return NeutralSubScore
	}
	return sum / weightSum
}
