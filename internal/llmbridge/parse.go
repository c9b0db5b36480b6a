package llmbridge

import (
	"encoding/json"
	"strings"
)

// ParseMode reports which stage of the response parser produced the
// analysis document.
type ParseMode string

const (
	// ParseStrict means a fenced ```json block was found and decoded.
	ParseStrict ParseMode = "strict_json_block"
	// ParseBare means the whole response body decoded as a JSON object.
	ParseBare ParseMode = "bare_json"
	// ParseDegraded means no JSON was present and a placeholder
	// analysis was synthesized around the raw text.
	ParseDegraded ParseMode = "degraded"
	// ParseError means JSON was present but malformed.
	ParseError ParseMode = "error"
)

const degradedSummaryLimit = 500

// parseAnalysisResponse extracts the structured analysis from a model
// response. It never fails: unparseable responses fall back to a
// degraded analysis document, with the mode tag telling the caller
// which path was taken.
func parseAnalysisResponse(response string) (map[string]any, ParseMode) {
	if i := strings.Index(response, "```json"); i >= 0 {
		start := i + len("```json")
		if end := strings.Index(response[start:], "```"); end > 0 {
			block := strings.TrimSpace(response[start : start+end])
			var doc map[string]any
			if err := json.Unmarshal([]byte(block), &doc); err != nil {
				return malformedAnalysis(response, err), ParseError
			}
			return doc, ParseStrict
		}
	}

	if strings.HasPrefix(strings.TrimSpace(response), "{") {
		var doc map[string]any
		if err := json.Unmarshal([]byte(response), &doc); err != nil {
			return malformedAnalysis(response, err), ParseError
		}
		return doc, ParseBare
	}

	return degradedAnalysis(response), ParseDegraded
}

// degradedAnalysis wraps a free-text response in the analysis shape so
// downstream consumers always see the same fields.
func degradedAnalysis(response string) map[string]any {
	summary := response
	if len(summary) > degradedSummaryLimit {
		summary = summary[:degradedSummaryLimit] + "..."
	}
	return map[string]any{
		"summary":              summary,
		"key_insights":         []string{"Analysis completed but response format was not JSON"},
		"common_perspectives":  []string{"Response parsing required manual review"},
		"regulatory_themes":    []any{},
		"stakeholder_concerns": []any{},
		"recommendations":      []any{},
		"sentiment_analysis": map[string]any{
			"overall_sentiment": "unknown",
			"confidence":        0.5,
			"details":           "Response format was not JSON",
		},
		"impact_assessment": map[string]any{
			"economic_impact":           "unknown",
			"implementation_challenges": []any{},
			"timeline_concerns":         []any{},
		},
		"confidence_score":        0.5,
		"total_comments_analyzed": 0,
		"raw_response":            response,
	}
}

func malformedAnalysis(response string, err error) map[string]any {
	return map[string]any{
		"summary":              "Analysis completed but response could not be parsed as JSON",
		"key_insights":         []string{"Response parsing failed"},
		"common_perspectives":  []string{"Manual review required"},
		"regulatory_themes":    []any{},
		"stakeholder_concerns": []any{},
		"recommendations":      []any{},
		"sentiment_analysis": map[string]any{
			"overall_sentiment": "unknown",
			"confidence":        0.3,
			"details":           "JSON parsing error: " + err.Error(),
		},
		"impact_assessment": map[string]any{
			"economic_impact":           "unknown",
			"implementation_challenges": []any{},
			"timeline_concerns":         []any{},
		},
		"confidence_score":        0.3,
		"total_comments_analyzed": 0,
		"raw_response":            response,
		"parse_error":             err.Error(),
	}
}
