package ideagen

import (
	"strconv"
	"strings"
)

// sanitizeString trims string input and maps anything else to "".
func sanitizeString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// sanitizeStringList keeps trimmed non-empty strings, up to max entries
// (max <= 0 means unbounded). Non-string members are dropped.
func sanitizeStringList(v any, max int) []string {
	out := []string{}
	arr, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range arr {
		s := sanitizeString(item)
		if s == "" {
			continue
		}
		out = append(out, s)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

// normalizeRiskTolerance renders a numeric-or-string tolerance as a string.
// JSON numbers arrive as float64; 2 becomes "2", 2.5 becomes "2.5".
func normalizeRiskTolerance(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return sanitizeString(v)
}

// NormalizeAnswers coerces an arbitrary questionnaire payload into the
// canonical Answers shape. It is total: absent or wrong-typed fields become
// empty values, never errors, so malformed client input cannot fail a request
// before synthesis. Normalizing the JSON form of its own output is a no-op.
func NormalizeAnswers(raw map[string]any) Answers {
	return Answers{
		Industry:         sanitizeStringList(raw["industry"], MaxIndustries),
		Experience:       sanitizeString(raw["experience"]),
		Budget:           sanitizeString(raw["budget"]),
		Timeline:         sanitizeString(raw["timeline"]),
		MarketPreference: sanitizeString(raw["market_preference"]),
		RiskTolerance:    normalizeRiskTolerance(raw["risk_tolerance"]),
		Strengths:        sanitizeStringList(raw["strengths"], 0),
		Goals:            sanitizeString(raw["goals"]),
	}
}
