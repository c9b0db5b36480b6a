package toolkit

import (
	"encoding/json"
	"strings"

	"regulens/internal/analysis"
)

// Summary types.
const (
	SummaryExecutive   = "executive"
	SummaryTechnical   = "technical"
	SummaryStakeholder = "stakeholder"
)

// analysisEnvelope is the AnalysisResult-shaped payload the insight
// tools reshape. Missing fields decode to their zero values, so a
// basic-depth payload is accepted too.
type analysisEnvelope struct {
	Success    bool            `json:"success"`
	DocumentID string          `json:"document_id"`
	Analysis   analysis.Result `json:"analysis"`
}

type insightsParams struct {
	AnalysisResults json.RawMessage `json:"analysis_results"`
	SummaryType     string          `json:"summary_type"`
}

type insightsResult struct {
	Success     bool   `json:"success"`
	SummaryType string `json:"summary_type"`
	Insights    any    `json:"insights"`
	DocumentID  string `json:"document_id"`
	Timestamp   string `json:"timestamp"`
}

type executiveSummary struct {
	Overview              string                `json:"overview"`
	KeyFindings           []string              `json:"key_findings"`
	Sentiment             string                `json:"sentiment"`
	StakeholderEngagement stakeholderEngagement `json:"stakeholder_engagement"`
	PrimaryThemes         []string              `json:"primary_themes"`
	ConfidenceLevel       float64               `json:"confidence_level"`
}

type stakeholderEngagement struct {
	TotalComments    int      `json:"total_comments"`
	StakeholderTypes []string `json:"stakeholder_types"`
}

type technicalSummary struct {
	TechnicalIssues          []string                    `json:"technical_issues"`
	ImplementationChallenges []string                    `json:"implementation_challenges"`
	RegulatoryThemes         []analysis.Theme            `json:"regulatory_themes"`
	ImpactAssessments        []analysis.ImpactAssessment `json:"impact_assessments"`
	Recommendations          []string                    `json:"recommendations"`
	DataQuality              analysis.ConfidenceVector   `json:"data_quality"`
}

type stakeholderSummary struct {
	StakeholderConcerns analysis.ConcernSet `json:"stakeholder_concerns"`
	StakeholderTypes    []string            `json:"stakeholder_types"`
	CommonPerspectives  []string            `json:"common_perspectives"`
	EconomicConcerns    []string            `json:"economic_concerns"`
	TimelineConcerns    []string            `json:"timeline_concerns"`
	EngagementLevel     int                 `json:"engagement_level"`
}

func decodeAnalysisResults(params json.RawMessage, p *insightsParams) (analysisEnvelope, json.RawMessage, error) {
	var env analysisEnvelope
	if len(params) > 0 {
		if err := json.Unmarshal(params, p); err != nil {
			return env, nil, err
		}
	}
	if len(p.AnalysisResults) == 0 {
		return env, nil, &ValidationError{Param: "analysis_results"}
	}
	if err := json.Unmarshal(p.AnalysisResults, &env); err != nil {
		return env, nil, err
	}
	if !env.Success {
		// A failed upstream analysis passes through untouched.
		return env, p.AnalysisResults, nil
	}
	return env, nil, nil
}

func (t *Interface) synthesizeInsights(params json.RawMessage) json.RawMessage {
	var p insightsParams
	env, passthrough, err := decodeAnalysisResults(params, &p)
	if err != nil {
		return t.toolError(ToolSynthesizeInsights, "", err)
	}
	if passthrough != nil {
		return passthrough
	}
	switch p.SummaryType {
	case "":
		p.SummaryType = SummaryExecutive
	case SummaryExecutive, SummaryTechnical, SummaryStakeholder:
	default:
		return t.toolError(ToolSynthesizeInsights, env.DocumentID, &ValidationError{Param: "summary_type"})
	}

	a := env.Analysis
	var insights any
	switch p.SummaryType {
	case SummaryTechnical:
		insights = technicalSummary{
			TechnicalIssues:          topStrings(a.TechnicalIssues, 5),
			ImplementationChallenges: topStrings(a.ImplementationChallenges, 5),
			RegulatoryThemes:         a.RegulatoryThemes,
			ImpactAssessments:        a.ImpactAssessments,
			Recommendations:          topStrings(a.RecommendationPatterns, 5),
			DataQuality:              a.ConfidenceScores,
		}
	case SummaryStakeholder:
		insights = stakeholderSummary{
			StakeholderConcerns: a.StakeholderConcerns,
			StakeholderTypes:    a.StakeholderTypes,
			CommonPerspectives:  a.CommonPerspectives,
			EconomicConcerns:    topStrings(a.EconomicConcerns, 5),
			TimelineConcerns:    topStrings(a.TimelineConcerns, 5),
			EngagementLevel:     a.TotalCommentsAnalyzed,
		}
	default:
		themes := []string{}
		for _, th := range a.RegulatoryThemes {
			themes = append(themes, th.Name)
			if len(themes) == 3 {
				break
			}
		}
		insights = executiveSummary{
			Overview:    a.Summary,
			KeyFindings: topStrings(a.KeyPoints, 3),
			Sentiment:   a.SentimentSummary,
			StakeholderEngagement: stakeholderEngagement{
				TotalComments:    a.TotalCommentsAnalyzed,
				StakeholderTypes: a.StakeholderTypes,
			},
			PrimaryThemes:   themes,
			ConfidenceLevel: a.ConfidenceScores.Overall,
		}
	}

	return marshalEnvelope(insightsResult{
		Success:     true,
		SummaryType: p.SummaryType,
		Insights:    insights,
		DocumentID:  env.DocumentID,
		Timestamp:   t.timestamp(),
	})
}

// themeCategoryNames is the fixed bucket order for theme categorization.
var themeCategoryNames = []string{
	"compliance", "economic", "environmental", "safety", "technical", "timeline",
}

type themesResult struct {
	Success         bool                        `json:"success"`
	ThemeCategories map[string][]analysis.Theme `json:"theme_categories"`
	TotalThemes     int                         `json:"total_themes"`
	DocumentID      string                      `json:"document_id"`
	Timestamp       string                      `json:"timestamp"`
}

func (t *Interface) identifyThemes(params json.RawMessage) json.RawMessage {
	var p insightsParams
	env, passthrough, err := decodeAnalysisResults(params, &p)
	if err != nil {
		return t.toolError(ToolIdentifyThemes, "", err)
	}
	if passthrough != nil {
		return passthrough
	}

	categories := map[string][]analysis.Theme{}
	for _, name := range themeCategoryNames {
		categories[name] = []analysis.Theme{}
	}
	for _, theme := range env.Analysis.RegulatoryThemes {
		for _, name := range themeCategoryNames {
			if strings.Contains(theme.Name, name) {
				categories[name] = append(categories[name], theme)
				break
			}
		}
	}

	return marshalEnvelope(themesResult{
		Success:         true,
		ThemeCategories: categories,
		TotalThemes:     len(env.Analysis.RegulatoryThemes),
		DocumentID:      env.DocumentID,
		Timestamp:       t.timestamp(),
	})
}

type concernAnalysis struct {
	TotalConcerns           int                     `json:"total_concerns"`
	ConcernsByType          map[string]int          `json:"concerns_by_type"`
	TopConcerns             []string                `json:"top_concerns"`
	StakeholderDistribution stakeholderDistribution `json:"stakeholder_distribution"`
}

type stakeholderDistribution struct {
	OrganizationConcerns []string `json:"organization_concerns"`
	IndividualConcerns   []string `json:"individual_concerns"`
}

type concernsResult struct {
	Success         bool            `json:"success"`
	ConcernAnalysis concernAnalysis `json:"concern_analysis"`
	DocumentID      string          `json:"document_id"`
	Timestamp       string          `json:"timestamp"`
}

func (t *Interface) assessConcerns(params json.RawMessage) json.RawMessage {
	var p insightsParams
	env, passthrough, err := decodeAnalysisResults(params, &p)
	if err != nil {
		return t.toolError(ToolAssessConcerns, "", err)
	}
	if passthrough != nil {
		return passthrough
	}

	concerns := env.Analysis.StakeholderConcerns
	return marshalEnvelope(concernsResult{
		Success: true,
		ConcernAnalysis: concernAnalysis{
			TotalConcerns: len(concerns.Organizations) + len(concerns.Individuals) + len(concerns.Common),
			ConcernsByType: map[string]int{
				"organizations": len(concerns.Organizations),
				"individuals":   len(concerns.Individuals),
				"common":        len(concerns.Common),
			},
			TopConcerns: topStrings(concerns.Common, 5),
			StakeholderDistribution: stakeholderDistribution{
				OrganizationConcerns: topStrings(concerns.Organizations, 3),
				IndividualConcerns:   topStrings(concerns.Individuals, 3),
			},
		},
		DocumentID: env.DocumentID,
		Timestamp:  t.timestamp(),
	})
}

func topStrings(items []string, n int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
