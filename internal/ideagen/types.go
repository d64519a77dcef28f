package ideagen

import "time"

const (
	// Trend fetching.
	DefaultSearchURL  = "https://hn.algolia.com/api/v1/search"
	HNItemURLPrefix   = "https://news.ycombinator.com/item?id="
	MaxIndustries     = 3
	HitsPerIndustry   = 5
	MaxTrends         = 15
	TrendFetchTimeout = 8 * time.Second

	// Synthesis.
	DefaultOpenAIURL      = "https://api.openai.com/v1/chat/completions"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-sonnet-4-5"
	DefaultTemperature    = 0.7
	SynthesisTimeout      = 30 * time.Second

	// Coercion defaults.
	DefaultTitle      = "Untitled Concept"
	DefaultSummary    = "A concise summary will appear here."
	DefaultFieldValue = "N/A"
	DefaultCategory   = "General"
	DefaultConfidence = 65
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Answers is the canonical questionnaire shape. Every field is defined after
// normalization; slices are never nil and never contain empty strings.
type Answers struct {
	Industry         []string `json:"industry"`
	Experience       string   `json:"experience"`
	Budget           string   `json:"budget"`
	Timeline         string   `json:"timeline"`
	MarketPreference string   `json:"market_preference"`
	RiskTolerance    string   `json:"risk_tolerance"`
	Strengths        []string `json:"strengths"`
	Goals            string   `json:"goals"`
}

// TrendItem is one external market signal tied to an industry. Title and
// Industry are always non-empty; records that cannot satisfy that are dropped
// at the coercion boundary rather than surfaced half-filled.
type TrendItem struct {
	Industry  string `json:"industry"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Points    int    `json:"points"`
	CreatedAt string `json:"created_at"`
}

type BusinessIdea struct {
	Title              string    `json:"title"`
	Summary            string    `json:"summary"`
	ConfidenceScore    int       `json:"confidenceScore"`
	MarketSize         string    `json:"marketSize"`
	EstimatedRevenue   string    `json:"estimatedRevenue"`
	ImplementationTime string    `json:"implementationTime"`
	RiskLevel          RiskLevel `json:"riskLevel"`
	Category           string    `json:"category"`
}

// Result is the wire response of one generation run.
type Result struct {
	BusinessIdea BusinessIdea `json:"businessIdea"`
	Trends       []TrendItem  `json:"trends"`
}
