package ideagen

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeAnswersDefaultsEverything(t *testing.T) {
	got := NormalizeAnswers(map[string]any{})
	want := Answers{Industry: []string{}, Strengths: []string{}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected answers: %+v", got)
	}
}

func TestNormalizeAnswersTrimsCapsAndDropsNonStrings(t *testing.T) {
	got := NormalizeAnswers(map[string]any{
		"industry":          []any{"  Technology ", 42, "", "Health", "Finance", "Retail"},
		"experience":        "  some experience ",
		"budget":            123.0,
		"risk_tolerance":    2.0,
		"strengths":         []any{" sales ", "", nil, "engineering"},
		"goals":             "  scale fast ",
		"market_preference": true,
	})

	if !reflect.DeepEqual(got.Industry, []string{"Technology", "Health", "Finance"}) {
		t.Fatalf("industry: %v", got.Industry)
	}
	if got.Experience != "some experience" {
		t.Fatalf("experience: %q", got.Experience)
	}
	if got.Budget != "" || got.MarketPreference != "" {
		t.Fatalf("wrong-typed fields should become empty: %+v", got)
	}
	if got.RiskTolerance != "2" {
		t.Fatalf("risk_tolerance: %q", got.RiskTolerance)
	}
	if !reflect.DeepEqual(got.Strengths, []string{"sales", "engineering"}) {
		t.Fatalf("strengths: %v", got.Strengths)
	}
}

func TestNormalizeRiskToleranceStringAndFraction(t *testing.T) {
	if got := NormalizeAnswers(map[string]any{"risk_tolerance": " 7 "}).RiskTolerance; got != "7" {
		t.Fatalf("string tolerance: %q", got)
	}
	if got := NormalizeAnswers(map[string]any{"risk_tolerance": 2.5}).RiskTolerance; got != "2.5" {
		t.Fatalf("fractional tolerance: %q", got)
	}
}

func TestNormalizeAnswersIsIdempotent(t *testing.T) {
	first := NormalizeAnswers(map[string]any{
		"industry":       []any{" Technology ", "Health"},
		"experience":     " veteran ",
		"risk_tolerance": 4.0,
		"strengths":      []any{"ops"},
		"goals":          "exit in 5 years",
	})

	blob, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	var roundTrip map[string]any
	if err := json.Unmarshal(blob, &roundTrip); err != nil {
		t.Fatal(err)
	}

	second := NormalizeAnswers(roundTrip)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("not a fixed point:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
