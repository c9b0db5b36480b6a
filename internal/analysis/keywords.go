package analysis

import (
	"regexp"
	"strings"
)

// KeywordCategory pairs a category name with the keywords that signal it.
// Categories are kept in slices, not maps, so iteration order is the
// declaration order and tie-breaking stays deterministic.
type KeywordCategory struct {
	Name     string
	Keywords []string
}

// WeightedTerm is a key term with a relative weight for key-point scoring.
type WeightedTerm struct {
	Term   string
	Weight int
}

// RecommendationPhrase is a recommendation trigger: Words matched in
// sequence with arbitrary whitespace between them. The pattern is
// compiled once at table construction.
type RecommendationPhrase struct {
	Words   []string
	pattern *regexp.Regexp
}

func newPhrase(words ...string) RecommendationPhrase {
	return RecommendationPhrase{
		Words:   words,
		pattern: regexp.MustCompile(strings.Join(words, `\s+`)),
	}
}

// KeywordTables is the full set of static pattern tables the analyzer
// matches against. Built once and never mutated; safe to share across
// concurrent analyses.
type KeywordTables struct {
	ThemePatterns    []KeywordCategory
	ImpactCategories []KeywordCategory
	ConcernPatterns  []KeywordCategory

	RecommendationPhrases []RecommendationPhrase

	TechnicalKeywords []string
	EconomicKeywords  []string
	TimelineKeywords  []string
	ChallengeKeywords []string

	KeyTerms []WeightedTerm

	SupportWords      []string
	OppositionWords   []string
	ConstructiveWords []string

	PositiveWords []string
	NegativeWords []string
}

// DefaultKeywordTables returns the standard regulatory-domain tables.
func DefaultKeywordTables() KeywordTables {
	return KeywordTables{
		ThemePatterns: []KeywordCategory{
			{Name: "compliance_burden", Keywords: []string{
				"compliance", "burden", "administrative", "paperwork", "reporting",
				"recordkeeping", "monitoring", "certification",
			}},
			{Name: "economic_impact", Keywords: []string{
				"cost", "economic", "financial", "budget", "expense", "investment",
				"revenue", "profit", "market", "competition",
			}},
			{Name: "environmental_concerns", Keywords: []string{
				"environment", "pollution", "emissions", "waste", "conservation",
				"sustainability", "climate", "greenhouse", "carbon",
			}},
			{Name: "safety_health", Keywords: []string{
				"safety", "health", "risk", "hazard", "protection", "injury",
				"illness", "exposure", "toxic", "dangerous",
			}},
			{Name: "implementation_timeline", Keywords: []string{
				"timeline", "deadline", "implementation", "effective date",
				"phase", "transition", "grace period", "compliance date",
			}},
			{Name: "technical_standards", Keywords: []string{
				"standard", "specification", "requirement", "criteria",
				"methodology", "procedure", "protocol", "guideline",
			}},
		},
		ImpactCategories: []KeywordCategory{
			{Name: "industry_impact", Keywords: []string{
				"industry", "business", "company", "firm", "sector", "market",
				"competition", "innovation", "investment",
			}},
			{Name: "consumer_impact", Keywords: []string{
				"consumer", "customer", "public", "user", "end user", "buyer",
				"purchaser", "beneficiary",
			}},
			{Name: "government_impact", Keywords: []string{
				"government", "agency", "federal", "state", "local", "regulatory",
				"enforcement", "oversight", "compliance",
			}},
			{Name: "environmental_impact", Keywords: []string{
				"environment", "ecosystem", "natural", "wildlife", "habitat",
				"biodiversity", "conservation",
			}},
		},
		ConcernPatterns: []KeywordCategory{
			{Name: "cost_concerns", Keywords: []string{"expensive", "costly", "burden", "financial impact"}},
			{Name: "timeline_concerns", Keywords: []string{"too fast", "too slow", "deadline", "timeline"}},
			{Name: "complexity_concerns", Keywords: []string{"complex", "complicated", "confusing", "unclear"}},
			{Name: "feasibility_concerns", Keywords: []string{"impossible", "unrealistic", "impractical", "feasible"}},
		},
		RecommendationPhrases: []RecommendationPhrase{
			newPhrase("recommend", "that"),
			newPhrase("suggest", "that"),
			newPhrase("propose", "that"),
			newPhrase("urge", "that"),
			newPhrase("request", "that"),
			newPhrase("should", "be"),
			newPhrase("would", "be", "better"),
			newPhrase("consider"),
			newPhrase("we", "recommend"),
			newPhrase("we", "suggest"),
		},
		TechnicalKeywords: []string{
			"technical", "technology", "methodology", "standard", "specification",
			"measurement", "testing", "validation", "calibration", "accuracy",
			"precision", "reliability", "interoperability", "compatibility",
		},
		EconomicKeywords: []string{
			"cost", "price", "economic", "financial", "budget", "expense",
			"investment", "revenue", "profit", "loss", "market", "competition",
			"efficiency", "productivity", "employment", "jobs",
		},
		TimelineKeywords: []string{
			"timeline", "deadline", "schedule", "implementation", "effective date",
			"compliance date", "phase", "transition", "grace period", "timeframe",
			"too fast", "too slow", "rushed", "delayed", "extended",
		},
		ChallengeKeywords: []string{
			"challenge", "barrier", "obstacle", "difficulty", "problem",
			"issue", "concern", "limitation", "constraint", "burden",
			"complex", "complicated", "unclear", "confusing", "impractical",
		},
		KeyTerms: []WeightedTerm{
			{Term: "compliance", Weight: 3}, {Term: "cost", Weight: 3},
			{Term: "burden", Weight: 2}, {Term: "impact", Weight: 2},
			{Term: "implementation", Weight: 2}, {Term: "safety", Weight: 2},
			{Term: "environment", Weight: 2}, {Term: "economic", Weight: 2},
			{Term: "technical", Weight: 2}, {Term: "timeline", Weight: 2},
			{Term: "standard", Weight: 1}, {Term: "requirement", Weight: 1},
			{Term: "regulation", Weight: 1}, {Term: "enforcement", Weight: 1},
		},
		SupportWords: []string{
			"support", "agree", "beneficial", "good", "effective", "necessary", "important",
		},
		OppositionWords: []string{
			"oppose", "concern", "problem", "burden", "costly", "unnecessary", "harmful",
		},
		ConstructiveWords: []string{
			"suggest", "recommend", "propose", "modify", "improve", "clarify",
		},
		PositiveWords: []string{
			"support", "agree", "beneficial", "good", "effective", "necessary", "important", "valuable",
		},
		NegativeWords: []string{
			"oppose", "concern", "problem", "burden", "costly", "unnecessary", "harmful", "difficult",
		},
	}
}
