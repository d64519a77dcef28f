package ideagen

import (
	"encoding/json"
	"strings"
)

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		parts := strings.SplitN(s, "\n", 2)
		if len(parts) == 2 {
			s = parts[1]
		}
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

// extractFirstJSONObject scans text for the first balanced top-level `{...}`
// substring. The scanner tracks string-literal boundaries and escape
// sequences so braces inside quoted strings do not move the depth counter.
func extractFirstJSONObject(text string) (string, bool) {
	inString := false
	escape := false
	depth := 0
	start := -1

	for i := 0; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
			if depth == 0 && start != -1 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// parseLooseJSON recovers a JSON object from free-form model output: strict
// parse first, then balanced-object extraction from the fence-stripped text.
func parseLooseJSON(raw string) (map[string]any, bool) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return parsed, true
	}

	obj, ok := extractFirstJSONObject(stripCodeFences(raw))
	if !ok {
		return nil, false
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}
