// Package analysis implements the deterministic multi-stage comment
// analysis pipeline: corpus normalization, independent keyword-pattern
// extractors, size-tiered confidence scoring and summary synthesis.
// Everything here is case-insensitive substring matching over static
// tables; there is no learned or probabilistic behavior.
package analysis

import (
	"time"

	"regulens/internal/regsgov"
)

// Result is the aggregate outcome of one analysis request. It is a pure
// function of the input comments and the static keyword tables, produced
// once and never mutated; re-analysis produces a new instance.
type Result struct {
	KeyPoints             []string `json:"key_points"`
	CommonPerspectives    []string `json:"common_perspectives"`
	SentimentSummary      string   `json:"sentiment_summary"`
	StakeholderTypes      []string `json:"stakeholder_types"`
	Summary               string   `json:"summary"`
	TotalCommentsAnalyzed int      `json:"total_comments_analyzed"`

	RegulatoryThemes         []Theme            `json:"regulatory_themes"`
	ImpactAssessments        []ImpactAssessment `json:"impact_assessments"`
	StakeholderConcerns      ConcernSet         `json:"stakeholder_concerns"`
	RecommendationPatterns   []string           `json:"recommendation_patterns"`
	TechnicalIssues          []string           `json:"technical_issues"`
	EconomicConcerns         []string           `json:"economic_concerns"`
	TimelineConcerns         []string           `json:"timeline_concerns"`
	ImplementationChallenges []string           `json:"implementation_challenges"`

	AnalysisTimestamp string           `json:"analysis_timestamp"`
	ConfidenceScores  ConfidenceVector `json:"confidence_scores"`
}

// Analyzer runs the pipeline against injected keyword tables. The tables
// are read-only after construction, so one Analyzer is safe to share
// across concurrent requests.
type Analyzer struct {
	tables KeywordTables
	now    func() time.Time
}

// New returns an Analyzer with the default regulatory keyword tables.
func New() *Analyzer {
	return NewWithTables(DefaultKeywordTables())
}

// NewWithTables returns an Analyzer with caller-supplied tables.
func NewWithTables(tables KeywordTables) *Analyzer {
	return &Analyzer{tables: tables, now: time.Now}
}

// Analyze builds a corpus from the comments and fans out across every
// extractor. It never fails on well-formed input; an empty batch yields
// empty collections throughout.
func (a *Analyzer) Analyze(comments []regsgov.Comment) *Result {
	corpus := BuildCorpus(comments)

	themes := detectThemes(corpus, a.tables.ThemePatterns)
	impacts := assessImpacts(corpus, a.tables.ImpactCategories)
	concerns := analyzeConcerns(corpus, a.tables.ConcernPatterns)
	recommendations := extractRecommendations(corpus, a.tables.RecommendationPhrases)
	technical := extractIssueSentences(corpus, a.tables.TechnicalKeywords)
	economic := extractIssueSentences(corpus, a.tables.EconomicKeywords)
	timeline := extractIssueSentences(corpus, a.tables.TimelineKeywords)
	challenges := extractIssueSentences(corpus, a.tables.ChallengeKeywords)

	keyPoints := extractKeyPoints(corpus, a.tables.KeyTerms)
	perspectives := identifyPerspectives(corpus, a.tables)
	sentiment := analyzeSentiment(corpus, a.tables)
	stakeholderTypes := categorizeStakeholders(corpus)

	summary := synthesizeSummary(corpus.Total, sentiment, perspectives, themes, impacts, concerns)

	return &Result{
		KeyPoints:             keyPoints,
		CommonPerspectives:    perspectives,
		SentimentSummary:      sentiment,
		StakeholderTypes:      stakeholderTypes,
		Summary:               summary,
		TotalCommentsAnalyzed: corpus.Total,

		RegulatoryThemes:         themes,
		ImpactAssessments:        impacts,
		StakeholderConcerns:      concerns,
		RecommendationPatterns:   recommendations,
		TechnicalIssues:          technical,
		EconomicConcerns:         economic,
		TimelineConcerns:         timeline,
		ImplementationChallenges: challenges,

		AnalysisTimestamp: a.now().Format(time.RFC3339),
		ConfidenceScores:  scoreConfidence(corpus.Total),
	}
}

// DataQualityScore rates comment completeness on [0,1]: text length,
// attribution, posted date and title each contribute a fixed share.
func DataQualityScore(comments []regsgov.Comment) float64 {
	if len(comments) == 0 {
		return 0.0
	}
	total := 0.0
	for _, cm := range comments {
		score := 0.0
		if len(cm.CommentText) > 50 {
			score += 0.4
		}
		if cm.SubmitterName != "" || cm.OrganizationName != "" {
			score += 0.3
		}
		if cm.PostedDate != "" {
			score += 0.2
		}
		if cm.Title != "" {
			score += 0.1
		}
		total += score
	}
	return total / float64(len(comments))
}
