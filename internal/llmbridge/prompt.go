package llmbridge

import (
	"encoding/json"
	"fmt"

	"regulens/internal/toolkit"
)

// buildAnalysisPrompt assembles the instruction prompt for a document
// analysis run. It embeds the document context, the serialized tool
// definitions, the step-by-step plan, and the exact response shape the
// parser expects back.
func buildAnalysisPrompt(documentID, documentTitle string, maxComments int) string {
	toolsJSON, _ := json.MarshalIndent(toolkit.Definitions(), "", "  ")

	return fmt.Sprintf(`You are an AI assistant specialized in analyzing regulatory comments using advanced tools. You have access to powerful tools for fetching and analyzing public comments from regulations.gov.

DOCUMENT TO ANALYZE:
- Document ID: %s
- Title: %s
- Max Comments: %d

AVAILABLE TOOLS:
%s

TASK: Analyze the public comments for this regulatory document and provide a comprehensive analysis.

INSTRUCTIONS:
1. First, test the API connection using the test_api_connection tool
2. Get the comment count using the get_comment_count tool
3. If comments exist, perform a comprehensive analysis using the analyze_regulatory_comments tool
4. Synthesize insights using the synthesize_comment_insights tool
5. Identify regulatory themes using the identify_regulatory_themes tool
6. Assess stakeholder concerns using the assess_stakeholder_concerns tool

TOOL USAGE FORMAT:
When you need to use a tool, respond with:
`+"```json"+`
{
  "tool": "tool_name",
  "parameters": {
    "param1": "value1",
    "param2": "value2"
  }
}
`+"```"+`

ANALYSIS REQUIREMENTS:
- Provide key insights and common perspectives
- Identify main regulatory themes and concerns
- Analyze stakeholder engagement and sentiment
- Extract recommendations and suggestions
- Assess potential impacts and challenges
- Provide confidence levels for your analysis

RESPONSE FORMAT:
Provide a comprehensive analysis in the following JSON format:

`+"```json"+`
{
  "summary": "Executive summary of the comment analysis",
  "key_insights": [
    "Key insight 1",
    "Key insight 2",
    "Key insight 3"
  ],
  "common_perspectives": [
    "Perspective 1",
    "Perspective 2"
  ],
  "regulatory_themes": [
    {
      "theme": "theme_name",
      "description": "description",
      "frequency": "high/medium/low"
    }
  ],
  "stakeholder_concerns": [
    {
      "concern": "concern_description",
      "stakeholder_type": "organizations/individuals/common",
      "severity": "high/medium/low"
    }
  ],
  "recommendations": [
    "Recommendation 1",
    "Recommendation 2"
  ],
  "sentiment_analysis": {
    "overall_sentiment": "positive/negative/mixed",
    "confidence": 0.85,
    "details": "Detailed sentiment analysis"
  },
  "impact_assessment": {
    "economic_impact": "high/medium/low",
    "implementation_challenges": ["challenge1", "challenge2"],
    "timeline_concerns": ["concern1", "concern2"]
  },
  "confidence_score": 0.8,
  "total_comments_analyzed": 25
}
`+"```"+`

Begin the analysis now. Start by testing the API connection and then proceed with the full analysis.`,
		documentID, documentTitle, maxComments, string(toolsJSON))
}
