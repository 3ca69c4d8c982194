package scoring

import "fmt"

// Trust tier base coefficients. These are the only three values a source can
// map to; boosting moves a point to the hard-proof coefficient.
const (
	CoefficientHardProof   = 1.0
	CoefficientSoftProof   = 0.7
	CoefficientDeclarative = 0.3
)

// NeutralSubScore is substituted for a category with zero present features so
// borrowers lacking a data channel are not unfairly zeroed out.
const NeutralSubScore = 50.0

// CoefficientTable maps each source type to its trust coefficient.
type CoefficientTable map[SourceType]float64

// Coefficient resolves the trust coefficient for a source. Unknown sources
// default to the declarative coefficient: under-trusting is the safe direction
// for a credit decision.
func (t CoefficientTable) Coefficient(s SourceType) float64 {
	if c, ok := t[s]; ok {
		return c
	}
	return CoefficientDeclarative
}

// Tier resolves the trust tier for a source, with the same declarative
// fallback as Coefficient.
func (t CoefficientTable) Tier(s SourceType) TrustTier {
	switch c := t.Coefficient(s); {
	case c >= CoefficientHardProof:
		return TierHardProof
	case c >= CoefficientSoftProof:
		return TierSoftProof
	default:
		return TierDeclarative
	}
}

// SpecKind selects the normalization curve for an attribute.
type SpecKind string

const (
	// KindAmount scales a monetary or count value linearly against a ceiling,
	// saturating at the maximum normalized value instead of overflowing.
	KindAmount SpecKind = "amount"
	// KindRatio maps a 0-1 ratio onto the 0-100 scale.
	KindRatio SpecKind = "ratio"
	// KindInverseRatio maps a 0-1 ratio where lower is better (e.g. expense
	// share of income) onto the 0-100 scale.
	KindInverseRatio SpecKind = "inverse_ratio"
	// KindScore passes through an already 0-100 value, clamped.
	KindScore SpecKind = "score"
	// KindBool maps true to 100 and false to 0.
	KindBool SpecKind = "bool"
)

// FeatureSpec declares how one raw attribute normalizes onto the unit scale.
// Ceiling is only meaningful for KindAmount.
type FeatureSpec struct {
	Label   string
	Kind    SpecKind
	Ceiling float64
}

// Band is one row of an ordered breakpoint table: the outcome applies when the
// score is at least Min. Tables are evaluated top-down, first match wins, so
// rows must be sorted by descending Min with a catch-all (Min 0) last.
type Band[T any] struct {
	Min     float64
	Outcome T
}

// EngineConfig carries every table and constant the engine needs. It is loaded
// once at process start, validated, and passed explicitly into every scoring
// call; there is no ambient global state.
type EngineConfig struct {
	// Coefficients maps source types to trust coefficients.
	Coefficients CoefficientTable

	// BoostEligible lists the sources whose coefficient may be raised to the
	// hard-proof tier by an auxiliary trust signal. Boosting sources already
	// at the ceiling is a no-op, so document/API sources are never listed.
	BoostEligible map[SourceType]bool

	// BoostTrustThreshold is the minimum auxiliary trust score (0-100) that
	// certifies boost-eligible data points.
	BoostTrustThreshold float64

	// Specs declares the recognized attributes and their normalization.
	// Unrecognized attributes are dropped with a warning, not an error.
	Specs map[string]FeatureSpec

	// CategoryFeatures assigns each feature a weight within its category.
	// Weights renormalize over present features at aggregation time.
	CategoryFeatures map[Category]map[string]float64

	// CategoryWeights are the fixed top-level weights combined into the
	// composite. Deliberately not normalized to sum to 1.
	CategoryWeights map[Category]float64

	// CertaintyThreshold and PenaltyScale control the certainty penalty:
	// penalty = max(0, (threshold - certainty) * scale).
	CertaintyThreshold float64
	PenaltyScale       float64

	// GradeBands and RiskBands map the final score to its taxonomies. The two
	// tables use different breakpoints and must stay independent.
	GradeBands []Band[Grade]
	RiskBands  []Band[RiskTier]

	// CeilingBands and RateBands drive the recommendation ladder: base credit
	// ceiling and suggested annual rate as step functions of the score.
	CeilingBands []Band[float64]
	RateBands    []Band[float64]

	// MinApprovalScore and MinApprovalCertainty gate rule 1 of the
	// recommendation ladder: below either, the request is declined.
	MinApprovalScore     float64
	MinApprovalCertainty float64
}

// DefaultConfig returns the production tables. Amounts are in XOF.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		// SMS-derived sources start at the soft tier: parsing is mechanical
		// but the sending phone is unverified until the auxiliary trust
		// signal certifies it, which is what the boost ladder is for.
		Coefficients: CoefficientTable{
			SourceDeclared:           CoefficientDeclarative,
			SourceSMSParsed:          CoefficientSoftProof,
			SourceScreenshotOCR:      CoefficientSoftProof,
			SourceDocumentOCR:        CoefficientHardProof,
			SourceAPIVerified:        CoefficientHardProof,
			SourcePartnerFeedback:    CoefficientSoftProof,
			SourceUtilitySMS:         CoefficientSoftProof,
			SourceTontineAttestation: CoefficientSoftProof,
		},
		BoostEligible: map[SourceType]bool{
			SourceSMSParsed:     true,
			SourceScreenshotOCR: true,
			SourceUtilitySMS:    true,
		},
		BoostTrustThreshold: 70,

		Specs: map[string]FeatureSpec{
			"id_document_verified":     {Label: "ID document verified", Kind: KindBool},
			"residence_tenure_years":   {Label: "Years at current residence", Kind: KindAmount, Ceiling: 10},
			"phone_number_age_months":  {Label: "Age of phone number", Kind: KindAmount, Ceiling: 36},
			"monthly_income":           {Label: "Monthly income", Kind: KindAmount, Ceiling: 500_000},
			"income_regularity":        {Label: "Income regularity", Kind: KindRatio},
			"mobile_money_inflow":      {Label: "Monthly mobile money inflow", Kind: KindAmount, Ceiling: 400_000},
			"utility_payment_ratio":    {Label: "Utility bills paid on time", Kind: KindRatio},
			"psychometric_score":       {Label: "Psychometric assessment", Kind: KindScore},
			"app_engagement":           {Label: "Application engagement", Kind: KindRatio},
			"expense_to_income":        {Label: "Expense share of income", Kind: KindInverseRatio},
			"savings_rate":             {Label: "Savings rate", Kind: KindRatio},
			"prior_repayment_ratio":    {Label: "Prior loans repaid on time", Kind: KindRatio},
			"tontine_participation":    {Label: "Active tontine member", Kind: KindBool},
			"community_endorsements":   {Label: "Community endorsements", Kind: KindAmount, Ceiling: 5},
			"guarantor_available":      {Label: "Guarantor available", Kind: KindBool},
			"region_economic_index":    {Label: "Regional economic index", Kind: KindScore},
			"sector_volatility":        {Label: "Activity sector volatility", Kind: KindInverseRatio},
		},
		CategoryFeatures: map[Category]map[string]float64{
			CategoryIdentityStability: {
				"id_document_verified":    0.5,
				"residence_tenure_years":  0.3,
				"phone_number_age_months": 0.2,
			},
			CategoryCashflow: {
				"monthly_income":        0.35,
				"income_regularity":     0.25,
				"mobile_money_inflow":   0.25,
				"utility_payment_ratio": 0.15,
			},
			CategoryBehavioral: {
				"psychometric_score": 0.7,
				"app_engagement":     0.3,
			},
			CategoryDiscipline: {
				"expense_to_income":     0.3,
				"savings_rate":          0.3,
				"prior_repayment_ratio": 0.4,
			},
			CategorySocialCapital: {
				"tontine_participation":  0.4,
				"community_endorsements": 0.3,
				"guarantor_available":    0.3,
			},
			CategoryEnvironmental: {
				"region_economic_index": 0.6,
				"sector_volatility":     0.4,
			},
		},
		CategoryWeights: map[Category]float64{
			CategoryIdentityStability: 0.42,
			CategoryCashflow:          0.42,
			CategoryBehavioral:        0.17,
			CategoryDiscipline:        0.28,
			CategorySocialCapital:     0.27,
			CategoryEnvironmental:     0.07,
		},

		CertaintyThreshold: 0.7,
		PenaltyScale:       10,

		GradeBands: []Band[Grade]{
			{Min: 90, Outcome: GradeAPlus},
			{Min: 80, Outcome: GradeA},
			{Min: 70, Outcome: GradeBPlus},
			{Min: 60, Outcome: GradeB},
			{Min: 50, Outcome: GradeCPlus},
			{Min: 40, Outcome: GradeC},
			{Min: 30, Outcome: GradeD},
			{Min: 0, Outcome: GradeE},
		},
		RiskBands: []Band[RiskTier]{
			{Min: 65, Outcome: RiskLow},
			{Min: 40, Outcome: RiskModerate},
			{Min: 0, Outcome: RiskHigh},
		},
		CeilingBands: []Band[float64]{
			{Min: 85, Outcome: 500_000},
			{Min: 70, Outcome: 300_000},
			{Min: 55, Outcome: 150_000},
			{Min: 0, Outcome: 50_000},
		},
		RateBands: []Band[float64]{
			{Min: 90, Outcome: 8.0},
			{Min: 80, Outcome: 9.5},
			{Min: 70, Outcome: 11.0},
			{Min: 60, Outcome: 12.5},
			{Min: 55, Outcome: 14.0},
			{Min: 0, Outcome: 16.0},
		},
		MinApprovalScore:     35,
		MinApprovalCertainty: 0.3,
	}
}

// Validate rejects configurations that would silently corrupt every
// subsequent score. A failure here is fatal at initialization and must never
// reach request time.
func (c *EngineConfig) Validate() error {
	if len(c.Coefficients) == 0 {
		return fmt.Errorf("coefficient table is empty")
	}
	for src, coeff := range c.Coefficients {
		if coeff < 0 || coeff > 1 {
			return fmt.Errorf("coefficient for source %q is %v, must be in [0,1]", src, coeff)
		}
	}
	if c.BoostTrustThreshold < 0 || c.BoostTrustThreshold > 100 {
		return fmt.Errorf("boost trust threshold %v out of [0,100]", c.BoostTrustThreshold)
	}
	if len(c.Specs) == 0 {
		return fmt.Errorf("feature spec table is empty")
	}
	for id, spec := range c.Specs {
		if spec.Kind == KindAmount && spec.Ceiling <= 0 {
			return fmt.Errorf("feature %q has kind amount with non-positive ceiling %v", id, spec.Ceiling)
		}
	}
	if len(c.CategoryWeights) == 0 {
		return fmt.Errorf("category weight table is empty")
	}
	for cat, w := range c.CategoryWeights {
		if w < 0 {
			return fmt.Errorf("category %q has negative weight %v", cat, w)
		}
	}
	for cat, features := range c.CategoryFeatures {
		if _, ok := c.CategoryWeights[cat]; !ok {
			return fmt.Errorf("category %q has feature weights but no top-level weight", cat)
		}
		for id, w := range features {
			if w < 0 {
				return fmt.Errorf("feature %q in category %q has negative weight %v", id, cat, w)
			}
			if _, ok := c.Specs[id]; !ok {
				return fmt.Errorf("feature %q in category %q has no normalization spec", id, cat)
			}
		}
	}
	if c.PenaltyScale < 0 {
		return fmt.Errorf("penalty scale %v is negative", c.PenaltyScale)
	}
	if c.CertaintyThreshold < 0 || c.CertaintyThreshold > 1 {
		return fmt.Errorf("certainty threshold %v out of [0,1]", c.CertaintyThreshold)
	}
	if err := validateBands("grade", c.GradeBands); err != nil {
		return err
	}
	if err := validateBands("risk", c.RiskBands); err != nil {
		return err
	}
	if err := validateBands("ceiling", c.CeilingBands); err != nil {
		return err
	}
	if err := validateBands("rate", c.RateBands); err != nil {
		return err
	}
	if c.MinApprovalCertainty < 0 || c.MinApprovalCertainty > 1 {
		return fmt.Errorf("minimum approval certainty %v out of [0,1]", c.MinApprovalCertainty)
	}
	return nil
}

// validateBands enforces the ordered-table invariant: strictly descending
// minimums ending in a catch-all at 0, so every score matches exactly one row.
func validateBands[T any](name string, bands []Band[T]) error {
	if len(bands) == 0 {
		return fmt.Errorf("%s band table is empty", name)
	}
	for i, b := range bands {
		if b.Min < 0 {
			return fmt.Errorf("%s band %d has negative minimum %v", name, i, b.Min)
		}
		if i > 0 && b.Min >= bands[i-1].Min {
			return fmt.Errorf("%s band table not strictly descending at row %d", name, i)
		}
	}
	if bands[len(bands)-1].Min != 0 {
		return fmt.Errorf("%s band table has no catch-all row at 0", name)
	}
	return nil
}

// matchBand returns the outcome of the first band whose minimum the score
// meets. Validate guarantees the catch-all exists, so the fallthrough only
// defends against negative scores after clamping bugs.
func matchBand[T any](bands []Band[T], score float64) T {
	for _, b := range bands {
		if score >= b.Min {
			return b.Outcome
		}
	}
	return bands[len(bands)-1].Outcome
}
