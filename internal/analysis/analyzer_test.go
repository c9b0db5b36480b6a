package analysis

import (
	"strings"
	"testing"

	"regulens/internal/regsgov"
)

func commentsWithText(texts ...string) []regsgov.Comment {
	out := make([]regsgov.Comment, 0, len(texts))
	for i, text := range texts {
		out = append(out, regsgov.Comment{
			ID:          "c-" + string(rune('a'+i)),
			CommentText: text,
		})
	}
	return out
}

func TestAnalyzeOrganizationScenario(t *testing.T) {
	comments := []regsgov.Comment{
		{
			ID:               "c-1",
			CommentText:      "We recommend that the compliance deadline be extended. The implementation timeline is too fast for small firms.",
			OrganizationName: "Acme Manufacturing Association",
		},
		{
			ID:               "c-2",
			CommentText:      "The proposed timeline is unrealistic and the cost burden is too high. We suggest that the agency phase in the requirements.",
			OrganizationName: "Clean Air Coalition",
		},
	}

	result := New().Analyze(comments)

	if result.TotalCommentsAnalyzed != 2 {
		t.Fatalf("total = %d, want 2", result.TotalCommentsAnalyzed)
	}
	if !strings.HasPrefix(result.Summary, "Analysis of 2 public comments reveals:") {
		t.Errorf("summary prefix wrong: %q", result.Summary)
	}
	if len(result.StakeholderTypes) != 1 || result.StakeholderTypes[0] != "Organizations (2)" {
		t.Errorf("stakeholder types = %v, want [Organizations (2)]", result.StakeholderTypes)
	}
	if len(result.TimelineConcerns) == 0 {
		t.Error("expected timeline concerns from deadline/timeline mentions")
	}
	if len(result.RecommendationPatterns) == 0 {
		t.Error("expected recommendation patterns from 'recommend that' / 'suggest that'")
	}
	if result.SentimentSummary != SentimentNegative {
		t.Errorf("sentiment = %q, want %q", result.SentimentSummary, SentimentNegative)
	}
	if result.CommonPerspectives[0] != PerspectiveConcerned {
		t.Errorf("first perspective = %q, want %q", result.CommonPerspectives[0], PerspectiveConcerned)
	}
	if result.CommonPerspectives[len(result.CommonPerspectives)-1] != PerspectiveConstructive {
		t.Errorf("expected constructive perspective, got %v", result.CommonPerspectives)
	}
	if result.AnalysisTimestamp == "" {
		t.Error("missing analysis timestamp")
	}
}

func TestConfidenceTiers(t *testing.T) {
	cases := []struct {
		total int
		want  float64
	}{
		{0, 0.2},
		{3, 0.2},
		{5, 0.4},
		{7, 0.4},
		{10, 0.6},
		{19, 0.6},
		{20, 0.8},
		{50, 0.8},
	}
	for _, tc := range cases {
		got := scoreConfidence(tc.total)
		if got.Overall != tc.want {
			t.Errorf("scoreConfidence(%d).Overall = %v, want %v", tc.total, got.Overall, tc.want)
		}
		if got.KeyPoints != clamp1(tc.want+0.1) {
			t.Errorf("scoreConfidence(%d).KeyPoints = %v, want %v", tc.total, got.KeyPoints, clamp1(tc.want+0.1))
		}
		if got.Theme != clamp1(tc.want+0.15) {
			t.Errorf("scoreConfidence(%d).Theme = %v, want %v", tc.total, got.Theme, clamp1(tc.want+0.15))
		}
		if got.Sentiment != tc.want {
			t.Errorf("scoreConfidence(%d).Sentiment = %v, want %v", tc.total, got.Sentiment, tc.want)
		}
	}
}

func TestBuildCorpusCountsEmptyTextComments(t *testing.T) {
	comments := []regsgov.Comment{
		{ID: "c-1", CommentText: "some substantive comment"},
		{ID: "c-2"},
		{ID: "c-3", CommentText: ""},
	}
	corpus := BuildCorpus(comments)
	if corpus.Total != 3 {
		t.Errorf("Total = %d, want 3 (empty comments still count)", corpus.Total)
	}
	if len(corpus.Texts) != 1 {
		t.Errorf("Texts = %d, want 1 (empty comments excluded from analysis)", len(corpus.Texts))
	}
}

func TestAnalyzeEmptyBatch(t *testing.T) {
	result := New().Analyze(nil)
	if result.TotalCommentsAnalyzed != 0 {
		t.Fatalf("total = %d, want 0", result.TotalCommentsAnalyzed)
	}
	if len(result.RegulatoryThemes) != 0 || len(result.KeyPoints) != 0 {
		t.Error("empty batch must produce empty collections")
	}
	if result.ConfidenceScores.Overall != 0.2 {
		t.Errorf("overall confidence = %v, want 0.2", result.ConfidenceScores.Overall)
	}
	if !strings.HasPrefix(result.Summary, "Analysis of 0 public comments reveals:") {
		t.Errorf("summary = %q", result.Summary)
	}
}

func TestDetectThemesCapAndOrder(t *testing.T) {
	// One comment naming keywords from all six theme categories, with
	// environmental keywords repeated so it must rank first. Filler
	// comments keep relevance scores below the 1.0 clamp so the sort
	// order is observable.
	comments := commentsWithText(
		"emissions emissions emissions pollution climate compliance reporting cost market safety risk timeline deadline standard criteria",
		"plain filler remark", "plain filler remark", "plain filler remark",
		"plain filler remark", "plain filler remark", "plain filler remark",
		"plain filler remark",
	)
	corpus := BuildCorpus(comments)
	themes := detectThemes(corpus, DefaultKeywordTables().ThemePatterns)

	if len(themes) > 5 {
		t.Fatalf("themes = %d, want at most 5", len(themes))
	}
	if themes[0].Name != "environmental_concerns" {
		t.Errorf("top theme = %q, want environmental_concerns", themes[0].Name)
	}
	for i := 1; i < len(themes); i++ {
		if themes[i].RelevanceScore > themes[i-1].RelevanceScore {
			t.Errorf("themes not sorted: %v before %v", themes[i-1], themes[i])
		}
	}
	for _, th := range themes {
		if th.RelevanceScore > 1.0 {
			t.Errorf("relevance score %v exceeds 1.0", th.RelevanceScore)
		}
	}
}

func TestExtractKeyPointsFormat(t *testing.T) {
	comments := commentsWithText("compliance compliance cost burden")
	corpus := BuildCorpus(comments)
	points := extractKeyPoints(corpus, DefaultKeywordTables().KeyTerms)

	if len(points) == 0 {
		t.Fatal("expected key points")
	}
	// "compliance" occurs twice at weight 3; score 6 beats cost (3) and burden (2).
	if points[0] != "'compliance' mentioned 6 times across comments" {
		t.Errorf("top point = %q", points[0])
	}
	if len(points) > 5 {
		t.Errorf("points = %d, want at most 5", len(points))
	}
}

func TestRecommendationsDedupAndCap(t *testing.T) {
	texts := []string{
		"We recommend that the rule be simplified.",
		"We recommend that the rule be simplified.",
	}
	corpus := BuildCorpus(commentsWithText(texts...))
	recs := extractRecommendations(corpus, DefaultKeywordTables().RecommendationPhrases)
	if len(recs) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	seen := map[string]bool{}
	for _, r := range recs {
		if seen[r] {
			t.Errorf("duplicate recommendation %q", r)
		}
		seen[r] = true
	}
	if len(recs) > 10 {
		t.Errorf("recommendations = %d, want at most 10", len(recs))
	}
}

func TestConcernsSplitByStakeholderType(t *testing.T) {
	comments := []regsgov.Comment{
		{ID: "c-1", CommentText: "This rule is too expensive for our members.", OrganizationName: "Trade Group"},
		{ID: "c-2", CommentText: "The new forms are confusing to fill out.", SubmitterName: "Jane Doe"},
	}
	corpus := BuildCorpus(comments)
	concerns := analyzeConcerns(corpus, DefaultKeywordTables().ConcernPatterns)

	if len(concerns.Organizations) == 0 {
		t.Error("expected an organization concern from 'expensive'")
	}
	if len(concerns.Individuals) == 0 {
		t.Error("expected an individual concern from 'confusing'")
	}
	for _, c := range concerns.Organizations {
		if !strings.Contains(c, ": ") || !strings.HasSuffix(c, "...") {
			t.Errorf("concern not in 'Title: excerpt...' form: %q", c)
		}
	}
	if !strings.HasPrefix(concerns.Organizations[0], "Cost Concerns: ") {
		t.Errorf("concern title = %q", concerns.Organizations[0])
	}
}

func TestSentimentDominanceRule(t *testing.T) {
	tables := DefaultKeywordTables()

	positive := BuildCorpus(commentsWithText("support support beneficial"))
	if got := analyzeSentiment(positive, tables); got != SentimentPositive {
		t.Errorf("sentiment = %q, want positive", got)
	}

	// One positive against one negative mention is within the 1.5x
	// band, so the verdict stays mixed.
	balanced := BuildCorpus(commentsWithText("support oppose"))
	if got := analyzeSentiment(balanced, tables); got != SentimentMixed {
		t.Errorf("sentiment = %q, want mixed", got)
	}
}

func TestDataQualityScore(t *testing.T) {
	if got := DataQualityScore(nil); got != 0.0 {
		t.Errorf("empty batch score = %v, want 0", got)
	}

	full := []regsgov.Comment{{
		CommentText:   strings.Repeat("detailed commentary on the proposed rule ", 3),
		SubmitterName: "Jane Doe",
		PostedDate:    "2025-01-15",
		Title:         "Comment on proposed rule",
	}}
	if got := DataQualityScore(full); got != 1.0 {
		t.Errorf("complete comment score = %v, want 1.0", got)
	}

	bare := []regsgov.Comment{{CommentText: "short"}}
	if got := DataQualityScore(bare); got != 0.0 {
		t.Errorf("bare comment score = %v, want 0", got)
	}
}
