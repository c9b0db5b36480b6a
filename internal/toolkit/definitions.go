package toolkit

import "encoding/json"

// FunctionSpec documents one callable operation (name + JSON schema).
type FunctionSpec struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

// ToolDefinition is the schema-described contract handed verbatim to an
// external orchestrator (a language model or a test harness).
type ToolDefinition struct {
	Type     string       `json:"type"`
	Function FunctionSpec `json:"function"`
}

// Tool names.
const (
	ToolAnalyzeComments    = "analyze_regulatory_comments"
	ToolCommentCount       = "get_comment_count"
	ToolSynthesizeInsights = "synthesize_comment_insights"
	ToolIdentifyThemes     = "identify_regulatory_themes"
	ToolAssessConcerns     = "assess_stakeholder_concerns"
	ToolTestConnection     = "test_api_connection"
)

// Definitions returns the six tool definitions. The set is static and
// process-wide; callers must not mutate it.
func Definitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Type: "function",
			Function: FunctionSpec{
				Name:        ToolAnalyzeComments,
				Description: "Analyze public comments on a regulatory document to extract key points, common perspectives, and stakeholder concerns",
				Parameters: json.RawMessage(`{
  "type": "object",
  "properties": {
    "document_id": {
      "type": "string",
      "description": "The regulations.gov document ID to analyze (e.g., 'EPA-HQ-OAR-2021-0317-0001')"
    },
    "max_comments": {
      "type": "integer",
      "description": "Maximum number of comments to analyze (default: 30, max: 100)",
      "default": 30,
      "minimum": 1,
      "maximum": 100
    },
    "analysis_depth": {
      "type": "string",
      "enum": ["basic", "advanced", "comprehensive"],
      "description": "Depth of analysis to perform",
      "default": "advanced"
    }
  },
  "required": ["document_id"]
}`),
			},
		},
		{
			Type: "function",
			Function: FunctionSpec{
				Name:        ToolCommentCount,
				Description: "Get the total number of public comments on a regulatory document",
				Parameters: json.RawMessage(`{
  "type": "object",
  "properties": {
    "document_id": {
      "type": "string",
      "description": "The regulations.gov document ID"
    }
  },
  "required": ["document_id"]
}`),
			},
		},
		{
			Type: "function",
			Function: FunctionSpec{
				Name:        ToolSynthesizeInsights,
				Description: "Synthesize key insights from comment analysis for executive summary",
				Parameters: json.RawMessage(`{
  "type": "object",
  "properties": {
    "analysis_results": {
      "type": "object",
      "description": "Results from analyze_regulatory_comments function"
    },
    "summary_type": {
      "type": "string",
      "enum": ["executive", "technical", "stakeholder"],
      "description": "Type of summary to generate",
      "default": "executive"
    }
  },
  "required": ["analysis_results"]
}`),
			},
		},
		{
			Type: "function",
			Function: FunctionSpec{
				Name:        ToolIdentifyThemes,
				Description: "Identify and categorize key regulatory themes from comment analysis",
				Parameters: json.RawMessage(`{
  "type": "object",
  "properties": {
    "analysis_results": {
      "type": "object",
      "description": "Results from analyze_regulatory_comments function"
    }
  },
  "required": ["analysis_results"]
}`),
			},
		},
		{
			Type: "function",
			Function: FunctionSpec{
				Name:        ToolAssessConcerns,
				Description: "Assess and categorize stakeholder concerns by type and frequency",
				Parameters: json.RawMessage(`{
  "type": "object",
  "properties": {
    "analysis_results": {
      "type": "object",
      "description": "Results from analyze_regulatory_comments function"
    }
  },
  "required": ["analysis_results"]
}`),
			},
		},
		{
			Type: "function",
			Function: FunctionSpec{
				Name:        ToolTestConnection,
				Description: "Test the connection to regulations.gov API",
				Parameters: json.RawMessage(`{
  "type": "object",
  "properties": {}
}`),
			},
		},
	}
}

// ToolNames returns the six tool names in definition order.
func ToolNames() []string {
	return []string{
		ToolAnalyzeComments,
		ToolCommentCount,
		ToolSynthesizeInsights,
		ToolIdentifyThemes,
		ToolAssessConcerns,
		ToolTestConnection,
	}
}
