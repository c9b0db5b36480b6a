package llmbridge

import (
	"strings"
	"testing"
)

func TestParseStrictJSONBlock(t *testing.T) {
	response := "Here is the analysis:\n```json\n{\"a\": 1}\n```\nDone."
	doc, mode := parseAnalysisResponse(response)
	if mode != ParseStrict {
		t.Fatalf("mode = %q, want %q", mode, ParseStrict)
	}
	if doc["a"] != float64(1) {
		t.Errorf("doc = %v", doc)
	}
}

func TestParseBareJSON(t *testing.T) {
	doc, mode := parseAnalysisResponse(`{"summary": "ok", "confidence_score": 0.8}`)
	if mode != ParseBare {
		t.Fatalf("mode = %q, want %q", mode, ParseBare)
	}
	if doc["summary"] != "ok" {
		t.Errorf("doc = %v", doc)
	}
}

func TestParseDegradedPlainText(t *testing.T) {
	doc, mode := parseAnalysisResponse("plain text with no json at all")
	if mode != ParseDegraded {
		t.Fatalf("mode = %q, want %q", mode, ParseDegraded)
	}
	if doc["confidence_score"] != 0.5 {
		t.Errorf("confidence_score = %v, want 0.5", doc["confidence_score"])
	}
	if _, hasErr := doc["parse_error"]; hasErr {
		t.Error("degraded document must not carry parse_error")
	}
	if doc["raw_response"] != "plain text with no json at all" {
		t.Errorf("raw_response = %v", doc["raw_response"])
	}
	sentiment := doc["sentiment_analysis"].(map[string]any)
	if sentiment["overall_sentiment"] != "unknown" {
		t.Errorf("overall_sentiment = %v", sentiment["overall_sentiment"])
	}
}

func TestParseDegradedTruncatesLongSummary(t *testing.T) {
	long := strings.Repeat("x", 600)
	doc, mode := parseAnalysisResponse(long)
	if mode != ParseDegraded {
		t.Fatalf("mode = %q", mode)
	}
	summary := doc["summary"].(string)
	if len(summary) != degradedSummaryLimit+3 || !strings.HasSuffix(summary, "...") {
		t.Errorf("summary length = %d, want %d plus ellipsis", len(summary), degradedSummaryLimit+3)
	}
}

func TestParseMalformedJSON(t *testing.T) {
	doc, mode := parseAnalysisResponse("{invalid json")
	if mode != ParseError {
		t.Fatalf("mode = %q, want %q", mode, ParseError)
	}
	if doc["confidence_score"] != 0.3 {
		t.Errorf("confidence_score = %v, want 0.3", doc["confidence_score"])
	}
	if doc["parse_error"] == "" || doc["parse_error"] == nil {
		t.Error("expected parse_error on malformed JSON")
	}
	if doc["summary"] != "Analysis completed but response could not be parsed as JSON" {
		t.Errorf("summary = %v", doc["summary"])
	}
}

func TestParseMalformedFencedBlock(t *testing.T) {
	_, mode := parseAnalysisResponse("```json\n{broken\n```")
	if mode != ParseError {
		t.Fatalf("mode = %q, want %q", mode, ParseError)
	}
}

func TestBuildAnalysisPromptEmbedsContext(t *testing.T) {
	prompt := buildAnalysisPrompt("EPA-HQ-2021-0317-0001", "Air Quality Standards", 30)

	for _, want := range []string{
		"Document ID: EPA-HQ-2021-0317-0001",
		"Title: Air Quality Standards",
		"Max Comments: 30",
		"analyze_regulatory_comments",
		"test_api_connection",
		"RESPONSE FORMAT:",
		"confidence_score",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
