// Package strings holds small string-slice helpers shared across the engine
// and its services.
package strings

import "strings"

// DedupeAndTrim trims each entry, drops blanks, and keeps only the first
// occurrence of every value. The scoring engine runs recommendation prompts
// through this so a borrower who trips the same normalizer rule on several
// attributes sees the prompt once, in its original position.
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
