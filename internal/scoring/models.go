// Package scoring implements the provenance-weighted scoring engine.
//
// The engine is a pure, synchronous pipeline over a snapshot of borrower
// attributes: normalize -> aggregate -> certify -> synthesize -> recommend.
// No component performs I/O or holds mutable state; concurrent scoring
// requests are independent. Persistence, transport, and trust-signal lookup
// live in the surrounding service packages.
package scoring

// SourceType labels how an attribute value was obtained. Every source resolves
// to exactly one trust tier; unknown sources fall back to the declarative tier
// (assume lowest trust) rather than failing the request.
type SourceType string

const (
	SourceDeclared           SourceType = "declared"
	SourceSMSParsed          SourceType = "sms_parsed"
	SourceScreenshotOCR      SourceType = "screenshot_ocr"
	SourceDocumentOCR        SourceType = "document_ocr"
	SourceAPIVerified        SourceType = "api_verified"
	SourcePartnerFeedback    SourceType = "partner_feedback"
	SourceUtilitySMS         SourceType = "utility_sms"
	SourceTontineAttestation SourceType = "tontine_attestation"
)

// TrustTier is the three-level trust classification of a data source.
type TrustTier string

const (
	TierHardProof   TrustTier = "hard_proof"
	TierSoftProof   TrustTier = "soft_proof"
	TierDeclarative TrustTier = "declarative"
)

// Category is one of the six fixed scoring categories.
type Category string

const (
	CategoryIdentityStability Category = "identity_stability"
	CategoryCashflow          Category = "cashflow_consistency"
	CategoryBehavioral        Category = "behavioral"
	CategoryDiscipline        Category = "financial_discipline"
	CategorySocialCapital     Category = "social_capital"
	CategoryEnvironmental     Category = "environmental"
)

// Categories returns the fixed category set in stable order. Iteration order
// matters for deterministic output, so callers must not range over maps keyed
// by Category when building responses.
func Categories() []Category {
	return []Category{
		CategoryIdentityStability,
		CategoryCashflow,
		CategoryBehavioral,
		CategoryDiscipline,
		CategorySocialCapital,
		CategoryEnvironmental,
	}
}

// Grade is the letter rating derived from the final numeric score.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeE     Grade = "E"
)

// RiskTier is the coarse risk classification derived from the final score.
// Its breakpoints are on a different scale than grades; the two taxonomies
// must not be conflated.
type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskModerate RiskTier = "moderate"
	RiskHigh     RiskTier = "high"
)

// TrustLevel is the borrower-facing label summarizing which proof tiers have
// been collected, independent of the numeric score.
type TrustLevel string

const (
	TrustUnverified TrustLevel = "unverified"
	TrustBasic      TrustLevel = "basic"
	TrustVerified   TrustLevel = "verified"
	TrustCertified  TrustLevel = "certified"
	TrustGold       TrustLevel = "gold"
)

// AttributeValue is one entry of the input contract: a raw value plus the
// source label emitted by the producing pipeline (KYC/OCR, SMS ingestion,
// declared-data forms).
type AttributeValue struct {
	Value  any        `json:"value"`
	Source SourceType `json:"source_type"`
}

// Input is the full snapshot the engine scores. AuxTrustScore is the optional
// 0-100 phone/identity trust signal used only to decide certainty boosting.
type Input struct {
	Attributes    map[string]AttributeValue `json:"attributes"`
	AuxTrustScore *float64                  `json:"aux_trust_score,omitempty"`
}

// Feature is a normalized borrower attribute. Value is always on the 0-100
// scale; out-of-range raw inputs are clamped by the normalizer, never passed
// through.
type Feature struct {
	ID     string     `json:"id"`
	Label  string     `json:"label"`
	Value  float64    `json:"value"`
	Source SourceType `json:"source_type"`
}

// CertifiedDataPoint is a Feature annotated with its certainty coefficient.
// Certification can only raise the coefficient relative to the base source
// mapping, never lower it.
type CertifiedDataPoint struct {
	FeatureID            string     `json:"feature_id"`
	Label                string     `json:"label"`
	Value                float64    `json:"value"`
	Source               SourceType `json:"source_type"`
	IsCertified          bool       `json:"is_certified"`
	CertaintyCoefficient float64    `json:"certainty_coefficient"`
}

// CategorySubScore is the weighted sub-score for one category. Weight is the
// top-level category weight; weights are deliberately not normalized to sum
// to 1 (the composite divides by their sum).
type CategorySubScore struct {
	Category Category `json:"category"`
	RawValue float64  `json:"raw_value"`
	Weight   float64  `json:"weight"`
}

// ScoreResult is the terminal aggregate of one scoring request. It is computed
// fresh per request and immutable once returned; persistence belongs to the
// service layer.
type ScoreResult struct {
	FinalScore       int                `json:"final_score"`
	Grade            Grade              `json:"grade"`
	RiskTier         RiskTier           `json:"risk_tier"`
	TrustLevel       TrustLevel         `json:"trust_level"`
	OverallCertainty float64            `json:"overall_certainty"`
	RawScore         float64            `json:"raw_score"`
	CertifiedScore   float64            `json:"certified_score"`
	CategoryScores   []CategorySubScore `json:"category_scores"`
	SourceBreakdown  map[SourceType]int `json:"source_breakdown"`
	Recommendations  []string           `json:"recommendations"`
}

// CreditRecommendation is the bounded credit decision derived solely from a
// ScoreResult. Never mutated after creation.
type CreditRecommendation struct {
	Approved       bool     `json:"approved"`
	MaxAmount      float64  `json:"max_amount"`
	MaxTenorMonths int      `json:"max_tenor_months"`
	SuggestedRate  float64  `json:"suggested_rate"`
	Conditions     []string `json:"conditions"`
}
