package ideagen

import (
	"encoding/json"
	"strings"
)

var synthSystemPrompt = strings.Join([]string{
	"You are a sharp venture analyst. You evaluate founder questionnaires alongside recent tech and market signals to craft one best-fit startup idea.",
	"Constraints:",
	"- Output JSON ONLY with the exact schema below. Do not include backticks or explanations.",
	"- Be concise and pragmatic. Use clear, specific language.",
	"- Ensure confidenceScore is an integer between 0 and 100.",
	"- Choose an appropriate riskLevel from: low | medium | high.",
	"",
	"Schema to output strictly:",
	`businessIdea: { title: string, summary: string, confidenceScore: number, marketSize: string, estimatedRevenue: string, implementationTime: string, riskLevel: "low" | "medium" | "high", category: string }`,
	`trends: [ { industry: string, title: string, url: string, points: number, created_at: string } ]`,
	`Top-level response: { "businessIdea": ..., "trends": [...] }`,
}, "\n")

const synthInstruction = "Propose exactly one businessIdea aligned to the questionnaire and supported by the trend_snippets. Output JSON with keys: businessIdea, trends (reuse or refine given snippets)."

type promptPayload struct {
	Questionnaire Answers     `json:"questionnaire"`
	TrendSnippets []TrendItem `json:"trend_snippets"`
	Instruction   string      `json:"instruction"`
}

// BuildPrompt assembles the system instruction and the JSON user payload for
// one synthesis call.
func BuildPrompt(answers Answers, trends []TrendItem) (system, user string) {
	if trends == nil {
		trends = []TrendItem{}
	}
	payload, _ := json.Marshal(promptPayload{
		Questionnaire: answers,
		TrendSnippets: trends,
		Instruction:   synthInstruction,
	})
	return synthSystemPrompt, string(payload)
}
