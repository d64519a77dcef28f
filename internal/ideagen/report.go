package ideagen

import (
	"fmt"
	"strings"
)

// BuildReportMarkdown renders one generation result as a shareable markdown
// report.
func BuildReportMarkdown(res Result) string {
	var b strings.Builder
	idea := res.BusinessIdea

	fmt.Fprintf(&b, "# %s\n\n", idea.Title)
	fmt.Fprintf(&b, "%s\n\n", idea.Summary)

	fmt.Fprintf(&b, "## At a Glance\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Category | %s |\n", idea.Category)
	fmt.Fprintf(&b, "| Confidence | %d/100 |\n", idea.ConfidenceScore)
	fmt.Fprintf(&b, "| Risk Level | %s |\n", idea.RiskLevel)
	fmt.Fprintf(&b, "| Market Size | %s |\n", idea.MarketSize)
	fmt.Fprintf(&b, "| Estimated Revenue | %s |\n", idea.EstimatedRevenue)
	fmt.Fprintf(&b, "| Implementation Time | %s |\n\n", idea.ImplementationTime)

	fmt.Fprintf(&b, "## Supporting Trends\n\n")
	if len(res.Trends) == 0 {
		fmt.Fprintf(&b, "No trend signals were available for this run.\n")
		return b.String()
	}
	for _, t := range res.Trends {
		if t.URL != "" {
			fmt.Fprintf(&b, "- [%s](%s) — %s", t.Title, t.URL, t.Industry)
		} else {
			fmt.Fprintf(&b, "- %s — %s", t.Title, t.Industry)
		}
		if t.Points > 0 {
			fmt.Fprintf(&b, " (%d points)", t.Points)
		}
		b.WriteString("\n")
	}
	return b.String()
}
