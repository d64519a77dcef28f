package ideagen

import (
	"strings"
	"testing"
)

func TestBuildReportMarkdown(t *testing.T) {
	res := Result{
		BusinessIdea: BusinessIdea{
			Title:              "Robotics Opportunity",
			Summary:            "A concept.",
			ConfidenceScore:    81,
			MarketSize:         "$1B",
			EstimatedRevenue:   "$100k",
			ImplementationTime: "6 months",
			RiskLevel:          RiskLow,
			Category:           "Robotics",
		},
		Trends: []TrendItem{
			{Industry: "Robotics", Title: "Warehouse automation", URL: "https://example.com", Points: 120},
			{Industry: "Robotics", Title: "No link trend"},
		},
	}

	md := BuildReportMarkdown(res)
	for _, want := range []string{
		"# Robotics Opportunity",
		"| Confidence | 81/100 |",
		"| Risk Level | low |",
		"[Warehouse automation](https://example.com)",
		"(120 points)",
		"- No link trend — Robotics",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("report missing %q:\n%s", want, md)
		}
	}
}

func TestBuildReportMarkdownNoTrends(t *testing.T) {
	md := BuildReportMarkdown(Result{BusinessIdea: BusinessIdea{Title: "T"}})
	if !strings.Contains(md, "No trend signals were available") {
		t.Fatalf("missing empty-trends note:\n%s", md)
	}
}
