package ideagen

import (
	"reflect"
	"testing"
)

func TestCoerceBusinessIdeaDefaultsEverything(t *testing.T) {
	got := CoerceBusinessIdea(nil)
	want := BusinessIdea{
		Title:              DefaultTitle,
		Summary:            DefaultSummary,
		ConfidenceScore:    DefaultConfidence,
		MarketSize:         DefaultFieldValue,
		EstimatedRevenue:   DefaultFieldValue,
		ImplementationTime: DefaultFieldValue,
		RiskLevel:          RiskMedium,
		Category:           DefaultCategory,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected idea: %+v", got)
	}
}

func TestCoerceBusinessIdeaConfidenceBounds(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
	}{
		{"negative clamps to 0", -10.0, 0},
		{"above range clamps to 100", 250.0, 100},
		{"fraction rounds", 82.6, 83},
		{"numeric string parses", "85", 85},
		{"garbage defaults", "very confident", DefaultConfidence},
		{"missing defaults", nil, DefaultConfidence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CoerceBusinessIdea(map[string]any{"confidenceScore": tc.in})
			if got.ConfidenceScore != tc.want {
				t.Fatalf("confidence=%d want=%d", got.ConfidenceScore, tc.want)
			}
		})
	}
}

func TestCoerceBusinessIdeaRiskLevels(t *testing.T) {
	cases := map[string]RiskLevel{
		"low":      RiskLow,
		"LOW":      RiskLow,
		" High ":   RiskHigh,
		"Medium":   RiskMedium,
		"extreme":  RiskMedium,
		"":         RiskMedium,
		"lowish":   RiskMedium,
		"  hIgH  ": RiskHigh,
	}
	for in, want := range cases {
		got := CoerceBusinessIdea(map[string]any{"riskLevel": in})
		if got.RiskLevel != want {
			t.Fatalf("riskLevel(%q)=%q want=%q", in, got.RiskLevel, want)
		}
	}
}

func TestCoerceTrendsDropsIncompleteRecords(t *testing.T) {
	got := CoerceTrends([]any{
		map[string]any{"title": "Kept", "industry": "Tech", "points": 12.0, "url": " https://x ", "created_at": "2026-01-01"},
		map[string]any{"title": "", "industry": "Tech"},
		map[string]any{"title": "No industry"},
		map[string]any{"industry": "Tech"},
		"not an object",
		map[string]any{"title": "Bad points", "industry": "Tech", "points": "many"},
		map[string]any{"title": "Negative points", "industry": "Tech", "points": -5.0},
	})

	if len(got) != 3 {
		t.Fatalf("expected 3 survivors, got %d: %+v", len(got), got)
	}
	if got[0].Points != 12 || got[0].URL != "https://x" {
		t.Fatalf("first record: %+v", got[0])
	}
	for _, item := range got {
		if item.Title == "" || item.Industry == "" {
			t.Fatalf("invariant violated: %+v", item)
		}
		if item.Points < 0 {
			t.Fatalf("negative points survived: %+v", item)
		}
	}
}

func TestCoerceTrendsNonArrayInput(t *testing.T) {
	if got := CoerceTrends("nope"); len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
	if got := CoerceTrends(nil); got == nil {
		t.Fatal("expected empty slice, got nil")
	}
}
