package toolkit

import (
	"context"
	"encoding/json"
	"log"

	"regulens/internal/analysis"
)

// Analysis depths.
const (
	DepthBasic         = "basic"
	DepthAdvanced      = "advanced"
	DepthComprehensive = "comprehensive"
)

const (
	defaultMaxComments = 30
	maxMaxComments     = 100
)

type analyzeParams struct {
	DocumentID    string `json:"document_id"`
	MaxComments   int    `json:"max_comments"`
	AnalysisDepth string `json:"analysis_depth"`
}

type analyzeResult struct {
	Success            bool   `json:"success"`
	DocumentID         string `json:"document_id"`
	AnalysisDepth      string `json:"analysis_depth,omitempty"`
	TotalCommentsFound int    `json:"total_comments_found"`
	Message            string `json:"message,omitempty"`
	Analysis           any    `json:"analysis"`
	Timestamp          string `json:"timestamp"`
}

// basicView is the reduced shape returned at basic depth.
type basicView struct {
	KeyPoints             []string `json:"key_points"`
	CommonPerspectives    []string `json:"common_perspectives"`
	SentimentSummary      string   `json:"sentiment_summary"`
	StakeholderTypes      []string `json:"stakeholder_types"`
	Summary               string   `json:"summary"`
	TotalCommentsAnalyzed int      `json:"total_comments_analyzed"`
}

type comprehensiveMetadata struct {
	AnalysisVersion    string   `json:"analysis_version"`
	FeaturesUsed       []string `json:"features_used"`
	DataQualityScore   float64  `json:"data_quality_score"`
	AnalysisConfidence float64  `json:"analysis_confidence"`
}

type comprehensiveView struct {
	*analysis.Result
	ComprehensiveMetadata comprehensiveMetadata `json:"comprehensive_metadata"`
}

func (t *Interface) analyzeComments(ctx context.Context, params json.RawMessage) json.RawMessage {
	var p analyzeParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return t.toolError(ToolAnalyzeComments, "", err)
		}
	}
	if p.DocumentID == "" {
		return t.toolError(ToolAnalyzeComments, "", &ValidationError{Param: "document_id"})
	}
	if p.MaxComments <= 0 {
		p.MaxComments = defaultMaxComments
	}
	if p.MaxComments > maxMaxComments {
		p.MaxComments = maxMaxComments
	}
	switch p.AnalysisDepth {
	case "":
		p.AnalysisDepth = DepthAdvanced
	case DepthBasic, DepthAdvanced, DepthComprehensive:
	default:
		return t.toolError(ToolAnalyzeComments, p.DocumentID, &ValidationError{Param: "analysis_depth"})
	}

	log.Printf("toolkit: starting %s analysis of document %s", p.AnalysisDepth, p.DocumentID)

	comments, err := t.source.FetchCommentsByDocumentID(ctx, p.DocumentID, p.MaxComments)
	if err != nil {
		return t.toolError(ToolAnalyzeComments, p.DocumentID, err)
	}

	if len(comments) == 0 {
		// Zero comments is a valid outcome, not an error.
		return marshalEnvelope(analyzeResult{
			Success:    true,
			DocumentID: p.DocumentID,
			Message:    "No comments found for this document",
			Analysis: &analysis.Result{
				KeyPoints:                []string{},
				CommonPerspectives:       []string{},
				SentimentSummary:         "No comments available for analysis",
				StakeholderTypes:         []string{},
				Summary:                  "No public comments were found for this document.",
				TotalCommentsAnalyzed:    0,
				RegulatoryThemes:         []analysis.Theme{},
				ImpactAssessments:        []analysis.ImpactAssessment{},
				StakeholderConcerns:      analysis.ConcernSet{Organizations: []string{}, Individuals: []string{}, Common: []string{}},
				RecommendationPatterns:   []string{},
				TechnicalIssues:          []string{},
				EconomicConcerns:         []string{},
				TimelineConcerns:         []string{},
				ImplementationChallenges: []string{},
				AnalysisTimestamp:        t.timestamp(),
			},
			Timestamp: t.timestamp(),
		})
	}

	full := t.analyzer.Analyze(comments)

	var payload any
	switch p.AnalysisDepth {
	case DepthBasic:
		payload = basicView{
			KeyPoints:             full.KeyPoints,
			CommonPerspectives:    full.CommonPerspectives,
			SentimentSummary:      full.SentimentSummary,
			StakeholderTypes:      full.StakeholderTypes,
			Summary:               full.Summary,
			TotalCommentsAnalyzed: full.TotalCommentsAnalyzed,
		}
	case DepthComprehensive:
		payload = comprehensiveView{
			Result: full,
			ComprehensiveMetadata: comprehensiveMetadata{
				AnalysisVersion:    "1.0",
				FeaturesUsed:       []string{"sentiment", "themes", "impacts", "stakeholders", "recommendations"},
				DataQualityScore:   analysis.DataQualityScore(comments),
				AnalysisConfidence: full.ConfidenceScores.Overall,
			},
		}
	default:
		payload = full
	}

	return marshalEnvelope(analyzeResult{
		Success:            true,
		DocumentID:         p.DocumentID,
		AnalysisDepth:      p.AnalysisDepth,
		TotalCommentsFound: len(comments),
		Analysis:           payload,
		Timestamp:          t.timestamp(),
	})
}

type countParams struct {
	DocumentID string `json:"document_id"`
}

type countResult struct {
	Success      bool   `json:"success"`
	DocumentID   string `json:"document_id"`
	CommentCount int    `json:"comment_count"`
	Timestamp    string `json:"timestamp"`
}

func (t *Interface) commentCount(ctx context.Context, params json.RawMessage) json.RawMessage {
	var p countParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return t.toolError(ToolCommentCount, "", err)
		}
	}
	if p.DocumentID == "" {
		return t.toolError(ToolCommentCount, "", &ValidationError{Param: "document_id"})
	}
	count, err := t.source.GetDocumentCommentCount(ctx, p.DocumentID)
	if err != nil {
		return t.toolError(ToolCommentCount, p.DocumentID, err)
	}
	return marshalEnvelope(countResult{
		Success:      true,
		DocumentID:   p.DocumentID,
		CommentCount: count,
		Timestamp:    t.timestamp(),
	})
}

type connectionResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

func (t *Interface) testConnection(ctx context.Context) json.RawMessage {
	msg, err := t.source.TestConnection(ctx)
	if err != nil {
		return marshalEnvelope(connectionResult{
			Success:   false,
			Error:     err.Error(),
			Timestamp: t.timestamp(),
		})
	}
	return marshalEnvelope(connectionResult{
		Success:   true,
		Message:   msg,
		Timestamp: t.timestamp(),
	})
}
