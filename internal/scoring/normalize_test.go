package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAll(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("scales amount against ceiling", func(t *testing.T) {
		features, warnings := NormalizeAll(cfg, map[string]AttributeValue{
			"monthly_income": {Value: 250_000.0, Source: SourceDeclared},
		})
		require.Len(t, features, 1)
		assert.Empty(t, warnings)
		assert.Equal(t, "monthly_income", features[0].ID)
		assert.InDelta(t, 50.0, features[0].Value, 1e-9)
		assert.Equal(t, SourceDeclared, features[0].Source)
	})

	t.Run("saturates above ceiling instead of overflowing", func(t *testing.T) {
		features, warnings := NormalizeAll(cfg, map[string]AttributeValue{
			"monthly_income": {Value: 2_000_000.0, Source: SourceSMSParsed},
		})
		require.Len(t, features, 1)
		assert.InDelta(t, 100.0, features[0].Value, 1e-9)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "clamped")
	})

	t.Run("clamps negative values to zero", func(t *testing.T) {
		features, warnings := NormalizeAll(cfg, map[string]AttributeValue{
			"savings_rate": {Value: -0.4, Source: SourceDeclared},
		})
		require.Len(t, features, 1)
		assert.Zero(t, features[0].Value)
		require.Len(t, warnings, 1)
	})

	t.Run("drops unrecognized attributes with a warning", func(t *testing.T) {
		features, warnings := NormalizeAll(cfg, map[string]AttributeValue{
			"favorite_color": {Value: "blue", Source: SourceDeclared},
		})
		assert.Empty(t, features)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "favorite_color")
	})

	t.Run("drops uncoercible values with a warning", func(t *testing.T) {
		features, warnings := NormalizeAll(cfg, map[string]AttributeValue{
			"monthly_income": {Value: []int{1}, Source: SourceDeclared},
		})
		assert.Empty(t, features)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "unusable")
	})

	t.Run("maps booleans and boolean strings", func(t *testing.T) {
		features, _ := NormalizeAll(cfg, map[string]AttributeValue{
			"id_document_verified":  {Value: true, Source: SourceDocumentOCR},
			"tontine_participation": {Value: "oui", Source: SourceTontineAttestation},
			"guarantor_available":   {Value: false, Source: SourceDeclared},
		})
		require.Len(t, features, 3)
		byID := map[string]float64{}
		for _, f := range features {
			byID[f.ID] = f.Value
		}
		assert.Equal(t, 100.0, byID["id_document_verified"])
		assert.Equal(t, 100.0, byID["tontine_participation"])
		assert.Equal(t, 0.0, byID["guarantor_available"])
	})

	t.Run("inverse ratio rewards lower values", func(t *testing.T) {
		features, _ := NormalizeAll(cfg, map[string]AttributeValue{
			"expense_to_income": {Value: 0.2, Source: SourceSMSParsed},
		})
		require.Len(t, features, 1)
		assert.InDelta(t, 80.0, features[0].Value, 1e-9)
	})

	t.Run("parses numeric strings", func(t *testing.T) {
		features, warnings := NormalizeAll(cfg, map[string]AttributeValue{
			"psychometric_score": {Value: "62.5", Source: SourceAPIVerified},
		})
		require.Len(t, features, 1)
		assert.Empty(t, warnings)
		assert.InDelta(t, 62.5, features[0].Value, 1e-9)
	})

	t.Run("features and warnings follow attribute-name order", func(t *testing.T) {
		attrs := map[string]AttributeValue{
			"savings_rate":   {Value: 0.3, Source: SourceDeclared},
			"monthly_income": {Value: 250_000.0, Source: SourceSMSParsed},
			"zz_unmapped":    {Value: 1.0, Source: SourceDeclared},
			"aa_unmapped":    {Value: 1.0, Source: SourceDeclared},
		}
		features, warnings := NormalizeAll(cfg, attrs)
		require.Len(t, features, 2)
		assert.Equal(t, "monthly_income", features[0].ID)
		assert.Equal(t, "savings_rate", features[1].ID)
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "aa_unmapped")
		assert.Contains(t, warnings[1], "zz_unmapped")
	})

	t.Run("empty input yields no features and no warnings", func(t *testing.T) {
		features, warnings := NormalizeAll(cfg, nil)
		assert.Empty(t, features)
		assert.Empty(t, warnings)
	})
}

func TestNormalize_Bounds(t *testing.T) {
	// Every spec kind must land in [0,100] for any raw input.
	cfg := DefaultConfig()
	rawValues := []float64{-1e9, -1, 0, 0.5, 1, 42, 100, 101, 1e9}
	for id, spec := range cfg.Specs {
		for _, raw := range rawValues {
			value, _ := normalize(spec, raw)
			assert.GreaterOrEqual(t, value, 0.0, "feature %s raw %v", id, raw)
			assert.LessOrEqual(t, value, 100.0, "feature %s raw %v", id, raw)
		}
	}
}
