package scoring

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// =============================================================================
// Engine Test Suite
// =============================================================================
// Justification for unit tests: the engine is the one subsystem with real
// invariants (score bounds, monotonic certainty effects, deterministic
// tie-breaks) and its failure handling (missing features, partial proof) is
// not reachable precisely through HTTP-level tests.

type EngineSuite struct {
	suite.Suite
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	var err error
	s.engine, err = NewEngine(DefaultConfig())
	s.Require().NoError(err)
}

// =============================================================================
// Constructor Tests (Invariant Enforcement)
// =============================================================================

func (s *EngineSuite) TestNewEngine() {
	s.Run("nil config returns error", func() {
		_, err := NewEngine(nil)
		s.Error(err)
	})

	s.Run("invalid config is fatal at construction", func() {
		cfg := DefaultConfig()
		cfg.PenaltyScale = -1
		_, err := NewEngine(cfg)
		s.Error(err)
		s.Contains(err.Error(), "invalid engine config")
	})

	s.Run("valid config returns configured engine", func() {
		engine, err := NewEngine(DefaultConfig())
		s.NoError(err)
		s.NotNil(engine)
	})
}

// =============================================================================
// Declarative-Only Input (Scenario A)
// =============================================================================

func declarativeAttributes() map[string]AttributeValue {
	return map[string]AttributeValue{
		"id_document_verified": {Value: true, Source: SourceDeclared},
		"monthly_income":       {Value: 300_000.0, Source: SourceDeclared},
		"income_regularity":    {Value: 0.9, Source: SourceDeclared},
		"expense_to_income":    {Value: 0.8, Source: SourceDeclared},
	}
}

func (s *EngineSuite) TestDeclarativeOnlyInput() {
	result, _ := s.engine.Evaluate(Input{Attributes: declarativeAttributes()})

	s.Run("certainty sits at the declarative coefficient", func() {
		s.InDelta(CoefficientDeclarative, result.OverallCertainty, 1e-9)
	})

	s.Run("recommendations prompt for proof", func() {
		s.True(hasRecommendation(result, "proof"), "expected a proof prompt, got %v", result.Recommendations)
	})

	s.Run("trust level is unverified", func() {
		s.Equal(TrustUnverified, result.TrustLevel)
	})

	s.Run("certified score equals raw score under uniform certainty", func() {
		s.InDelta(result.RawScore, result.CertifiedScore, 1e-9)
	})
}

// =============================================================================
// Verified Sources (Scenario B)
// =============================================================================

func (s *EngineSuite) TestVerifiedSourcesRaiseCertainty() {
	attrs := declarativeAttributes()
	baseline, _ := s.engine.Evaluate(Input{Attributes: attrs})

	verified := map[string]AttributeValue{
		"id_document_verified": {Value: true, Source: SourceDocumentOCR},
		"monthly_income":       {Value: 300_000.0, Source: SourceSMSParsed},
		"income_regularity":    {Value: 0.9, Source: SourceAPIVerified},
		"expense_to_income":    {Value: 0.8, Source: SourceAPIVerified},
	}
	result, _ := s.engine.Evaluate(Input{Attributes: verified})

	s.Run("raw score is unchanged by provenance", func() {
		s.InDelta(baseline.RawScore, result.RawScore, 1e-9)
	})

	s.Run("certainty rises with proof", func() {
		s.Greater(result.OverallCertainty, baseline.OverallCertainty)
	})

	s.Run("certified score rises when trusted points score higher", func() {
		s.Greater(result.CertifiedScore, baseline.CertifiedScore)
	})

	s.Run("trust level reflects hard proofs", func() {
		s.Equal(TrustCertified, result.TrustLevel)
	})
}

// =============================================================================
// Missing Categories (Scenario E)
// =============================================================================

func (s *EngineSuite) TestMissingCategoryDeterminism() {
	attrs := map[string]AttributeValue{
		"monthly_income":     {Value: 250_000.0, Source: SourceSMSParsed},
		"psychometric_score": {Value: 70.0, Source: SourceAPIVerified},
		"zz_legacy_field":    {Value: 1.0, Source: SourceDeclared},
		"aa_import_artifact": {Value: 2.0, Source: SourceDeclared},
		"mm_vendor_extra":    {Value: 3.0, Source: SourceSMSParsed},
	}

	first, firstRec := s.engine.Evaluate(Input{Attributes: attrs})

	s.Run("absent social capital uses the neutral default", func() {
		social := subScoreFor(s.T(), first.CategoryScores, CategorySocialCapital)
		s.Equal(NeutralSubScore, social.RawValue)
	})

	s.Run("repeat evaluations are identical despite map iteration", func() {
		for i := 0; i < 10; i++ {
			again, againRec := s.engine.Evaluate(Input{Attributes: attrs})
			s.Equal(first, again)
			s.Equal(firstRec, againRec)
		}
	})

	s.Run("unknown attribute warnings come out in name order", func() {
		var unknown []string
		for _, r := range first.Recommendations {
			if strings.Contains(r, "not recognized") {
				unknown = append(unknown, r)
			}
		}
		s.Len(unknown, 3)
		s.True(sort.StringsAreSorted(unknown), "expected sorted warnings, got %v", unknown)
	})

	s.Run("missing categories are called out", func() {
		s.True(hasRecommendation(first, string(CategorySocialCapital)))
	})
}

// =============================================================================
// Auxiliary Trust Boosting
// =============================================================================

func (s *EngineSuite) TestAuxTrustBoosting() {
	attrs := map[string]AttributeValue{
		"monthly_income":        {Value: 200_000.0, Source: SourceScreenshotOCR},
		"income_regularity":     {Value: 0.85, Source: SourceSMSParsed},
		"utility_payment_ratio": {Value: 0.95, Source: SourceUtilitySMS},
		"savings_rate":          {Value: 0.3, Source: SourceDeclared},
	}

	low := 40.0
	high := 90.0
	unboosted, _ := s.engine.Evaluate(Input{Attributes: attrs, AuxTrustScore: &low})
	boosted, _ := s.engine.Evaluate(Input{Attributes: attrs, AuxTrustScore: &high})

	s.Run("trust signal above threshold raises certainty", func() {
		s.Greater(boosted.OverallCertainty, unboosted.OverallCertainty)
	})

	s.Run("declared sources are never boosted", func() {
		none, _ := s.engine.Evaluate(Input{
			Attributes:    map[string]AttributeValue{"savings_rate": {Value: 0.3, Source: SourceDeclared}},
			AuxTrustScore: &high,
		})
		s.InDelta(CoefficientDeclarative, none.OverallCertainty, 1e-9)
	})
}

// =============================================================================
// Bounds Property
// =============================================================================

func (s *EngineSuite) TestBoundsHoldForArbitraryInput() {
	rng := rand.New(rand.NewSource(42))
	cfg := DefaultConfig()

	names := make([]string, 0, len(cfg.Specs))
	for name := range cfg.Specs {
		names = append(names, name)
	}
	sources := []SourceType{
		SourceDeclared, SourceSMSParsed, SourceScreenshotOCR, SourceDocumentOCR,
		SourceAPIVerified, SourcePartnerFeedback, SourceUtilitySMS,
		SourceTontineAttestation, SourceType("unknown_source"),
	}

	for i := 0; i < 500; i++ {
		attrs := make(map[string]AttributeValue)
		for _, name := range names {
			if rng.Float64() < 0.4 {
				continue // exercise missing features
			}
			attrs[name] = AttributeValue{
				Value:  rng.Float64()*1_200_000 - 100_000, // includes negatives and overflows
				Source: sources[rng.Intn(len(sources))],
			}
		}
		var aux *float64
		if rng.Float64() < 0.5 {
			v := rng.Float64() * 100
			aux = &v
		}

		result, rec := s.engine.Evaluate(Input{Attributes: attrs, AuxTrustScore: aux})
		s.GreaterOrEqual(result.FinalScore, 0)
		s.LessOrEqual(result.FinalScore, 100)
		s.GreaterOrEqual(result.OverallCertainty, 0.0)
		s.LessOrEqual(result.OverallCertainty, 1.0)
		s.GreaterOrEqual(result.RawScore, 0.0)
		s.LessOrEqual(result.RawScore, 100.0)
		s.GreaterOrEqual(result.CertifiedScore, 0.0)
		s.LessOrEqual(result.CertifiedScore, 100.0)
		s.NotEmpty(result.Grade)
		s.NotEmpty(result.RiskTier)
		s.NotNil(rec)
	}
}

// =============================================================================
// Empty Input
// =============================================================================

func (s *EngineSuite) TestEmptyInput() {
	result, rec := s.engine.Evaluate(Input{})

	s.Run("scoring never fails outright", func() {
		s.NotNil(result)
		s.NotNil(rec)
	})

	s.Run("zero certainty declines the request", func() {
		s.Zero(result.OverallCertainty)
		s.False(rec.Approved)
	})

	s.Run("every category degrades to neutral", func() {
		for _, sub := range result.CategoryScores {
			s.Equal(NeutralSubScore, sub.RawValue)
		}
	})
}

func hasRecommendation(result *ScoreResult, fragment string) bool {
	for _, r := range result.Recommendations {
		if strings.Contains(r, fragment) {
			return true
		}
	}
	return false
}
