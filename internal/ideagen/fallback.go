package ideagen

import (
	"fmt"
	"strconv"
	"strings"
)

// FallbackIdea derives a BusinessIdea from the normalized answers and fetched
// trends with no network dependency. It is pure: same input, same output,
// which keeps the product usable when no completion credential is configured.
func FallbackIdea(answers Answers, trends []TrendItem) BusinessIdea {
	industry := DefaultCategory
	if len(answers.Industry) > 0 {
		industry = answers.Industry[0]
	}
	timeline := orDefault(answers.Timeline, "3-6 months")
	goal := orDefault(answers.Goals, "grow a sustainable business")

	risk := RiskMedium
	confidence := 70
	if tol, err := strconv.ParseFloat(answers.RiskTolerance, 64); err == nil {
		switch {
		case tol <= 3:
			risk = RiskLow
		case tol >= 8:
			risk = RiskHigh
		}
		confidence = 70 + int((8-tol)*2)
		if confidence < 60 {
			confidence = 60
		}
		if confidence > 95 {
			confidence = 95
		}
	}

	highlight := "emerging demand signals"
	if len(trends) > 0 {
		highlight = trends[0].Title
	}
	strengths := ""
	if len(answers.Strengths) > 0 {
		strengths = fmt.Sprintf(" (%s)", strings.Join(answers.Strengths, ", "))
	}

	return BusinessIdea{
		Title: fmt.Sprintf("%s Opportunity: Trend-Aligned Concept", industry),
		Summary: fmt.Sprintf(
			"Based on your profile and live trend signals (e.g., %s), this concept targets your goal to %s. It leverages your strengths%s and is scoped for a %s implementation.",
			highlight, goal, strengths, timeline),
		ConfidenceScore:    confidence,
		MarketSize:         "$500M+ TAM (estimated)",
		EstimatedRevenue:   "$50k-$200k in Year 1 (range)",
		ImplementationTime: timeline,
		RiskLevel:          risk,
		Category:           industry,
	}
}
