package ideagen

import (
	"math"
	"strconv"
	"strings"
)

// toNumber mirrors loose numeric coercion of JSON values: float64 from the
// decoder, or a string holding a number.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(sanitizeString(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// CoerceBusinessIdea maps an untyped value onto a fully-defaulted
// BusinessIdea. It is total: whatever the upstream model produced, every
// field of the result is present, confidenceScore is an integer in [0,100]
// and riskLevel is one of the three known buckets.
func CoerceBusinessIdea(v any) BusinessIdea {
	m, _ := v.(map[string]any)

	risk := RiskMedium
	switch RiskLevel(strings.ToLower(sanitizeString(m["riskLevel"]))) {
	case RiskLow:
		risk = RiskLow
	case RiskHigh:
		risk = RiskHigh
	case RiskMedium:
		risk = RiskMedium
	}

	confidence := DefaultConfidence
	if n, ok := toNumber(m["confidenceScore"]); ok {
		confidence = int(math.Round(n))
		if confidence < 0 {
			confidence = 0
		}
		if confidence > 100 {
			confidence = 100
		}
	}

	return BusinessIdea{
		Title:              orDefault(sanitizeString(m["title"]), DefaultTitle),
		Summary:            orDefault(sanitizeString(m["summary"]), DefaultSummary),
		ConfidenceScore:    confidence,
		MarketSize:         orDefault(sanitizeString(m["marketSize"]), DefaultFieldValue),
		EstimatedRevenue:   orDefault(sanitizeString(m["estimatedRevenue"]), DefaultFieldValue),
		ImplementationTime: orDefault(sanitizeString(m["implementationTime"]), DefaultFieldValue),
		RiskLevel:          risk,
		Category:           orDefault(sanitizeString(m["category"]), DefaultCategory),
	}
}

// CoerceTrends maps an untyped value onto trend records. Candidates missing a
// title or industry are dropped outright; the survivors are fully defaulted.
func CoerceTrends(v any) []TrendItem {
	arr, ok := v.([]any)
	if !ok {
		return []TrendItem{}
	}
	out := make([]TrendItem, 0, len(arr))
	for _, item := range arr {
		m, _ := item.(map[string]any)
		title := sanitizeString(m["title"])
		industry := sanitizeString(m["industry"])
		if title == "" || industry == "" {
			continue
		}
		points := 0
		if n, ok := toNumber(m["points"]); ok && n > 0 {
			points = int(math.Round(n))
		}
		out = append(out, TrendItem{
			Industry:  industry,
			Title:     title,
			URL:       sanitizeString(m["url"]),
			Points:    points,
			CreatedAt: sanitizeString(m["created_at"]),
		})
	}
	return out
}
