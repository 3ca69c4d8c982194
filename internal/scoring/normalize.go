package scoring

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NormalizeAll converts the raw attribute map into normalized features.
// Unrecognized attributes and uncoercible values are dropped with a warning
// entry so the request degrades gracefully instead of failing. Returned
// warnings are surfaced to the caller in the score result. Attributes are
// processed in name order so identical inputs yield identical output slices.
func NormalizeAll(cfg *EngineConfig, attrs map[string]AttributeValue) ([]Feature, []string) {
	features := make([]Feature, 0, len(attrs))
	var warnings []string

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		attr := attrs[name]
		spec, ok := cfg.Specs[name]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("attribute %q is not recognized and was ignored", name))
			continue
		}
		raw, ok := coerce(attr.Value)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("attribute %q has an unusable value and was ignored", name))
			continue
		}
		value, clamped := normalize(spec, raw)
		if clamped {
			warnings = append(warnings, fmt.Sprintf("attribute %q was outside its expected range and was clamped", name))
		}
		features = append(features, Feature{
			ID:     name,
			Label:  spec.Label,
			Value:  value,
			Source: attr.Source,
		})
	}

	return features, warnings
}

// normalize maps a coerced raw value onto the 0-100 scale per the feature kind.
// Negative values clamp to zero; values above the ceiling saturate at the
// maximum normalized value rather than overflowing linearly.
func normalize(spec FeatureSpec, raw float64) (value float64, clamped bool) {
	switch spec.Kind {
	case KindBool:
		if raw != 0 {
			return 100, false
		}
		return 0, false
	case KindRatio:
		return scale(raw, 1)
	case KindInverseRatio:
		v, c := scale(raw, 1)
		return 100 - v, c
	case KindScore:
		return scale(raw, 100)
	case KindAmount:
		return scale(raw, spec.Ceiling)
	default:
		return 0, true
	}
}

func scale(raw, ceiling float64) (float64, bool) {
	switch {
	case raw < 0:
		return 0, true
	case raw > ceiling:
		return 100, true
	default:
		return raw / ceiling * 100, false
	}
}

// coerce turns the loosely typed input value into a float64. Booleans map to
// 1/0; strings accept numeric text and the usual boolean spellings.
func coerce(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(strings.ToLower(t))
		switch s {
		case "true", "yes", "oui":
			return 1, true
		case "false", "no", "non":
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
