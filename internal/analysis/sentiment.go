package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Sentiment and perspective labels.
const (
	SentimentPositive = "Predominantly positive sentiment"
	SentimentNegative = "Predominantly negative sentiment"
	SentimentMixed    = "Mixed sentiment with both support and concerns"

	PerspectiveSupportive   = "Generally supportive of the proposed regulation"
	PerspectiveConcerned    = "Generally concerned about the proposed regulation"
	PerspectiveMixed        = "Mixed perspectives with both support and concerns"
	PerspectiveConstructive = "Many comments provide constructive suggestions for improvement"
)

func countOccurrences(allText string, words []string) int {
	total := 0
	for _, w := range words {
		total += strings.Count(allText, w)
	}
	return total
}

// identifyPerspectives classifies the corpus by the 1.5x dominance rule:
// one bucket must exceed the other by at least half to claim a clear
// verdict, otherwise the corpus is mixed.
func identifyPerspectives(c Corpus, t KeywordTables) []string {
	allText := c.joinedLower()
	perspectives := []string{}

	support := countOccurrences(allText, t.SupportWords)
	opposition := countOccurrences(allText, t.OppositionWords)
	constructive := countOccurrences(allText, t.ConstructiveWords)

	switch {
	case float64(support) > float64(opposition)*1.5:
		perspectives = append(perspectives, PerspectiveSupportive)
	case float64(opposition) > float64(support)*1.5:
		perspectives = append(perspectives, PerspectiveConcerned)
	default:
		perspectives = append(perspectives, PerspectiveMixed)
	}

	if constructive > 0 {
		perspectives = append(perspectives, PerspectiveConstructive)
	}
	return perspectives
}

// analyzeSentiment labels the overall corpus sentiment using the same
// dominance rule over the positive/negative word buckets.
func analyzeSentiment(c Corpus, t KeywordTables) string {
	allText := c.joinedLower()
	positive := countOccurrences(allText, t.PositiveWords)
	negative := countOccurrences(allText, t.NegativeWords)

	switch {
	case float64(positive) > float64(negative)*1.5:
		return SentimentPositive
	case float64(negative) > float64(positive)*1.5:
		return SentimentNegative
	default:
		return SentimentMixed
	}
}

// categorizeStakeholders counts stakeholder types and formats them as
// "Organizations (N)" entries, highest count first.
func categorizeStakeholders(c Corpus) []string {
	counts := map[string]int{}
	order := []string{}
	for _, st := range c.Stakeholders {
		if counts[st.Type] == 0 {
			order = append(order, st.Type)
		}
		counts[st.Type]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	categories := []string{}
	for _, typ := range order {
		label := strings.ToUpper(typ[:1]) + typ[1:]
		categories = append(categories, fmt.Sprintf("%ss (%d)", label, counts[typ]))
	}
	return categories
}

// extractKeyPoints scores the weighted key-term table against the whole
// corpus text and reports the top five terms.
func extractKeyPoints(c Corpus, terms []WeightedTerm) []string {
	allText := c.joinedLower()

	type scored struct {
		term  string
		score int
	}
	scores := []scored{}
	for _, wt := range terms {
		n := strings.Count(allText, wt.Term)
		if n > 0 {
			scores = append(scores, scored{term: wt.Term, score: n * wt.Weight})
		}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})
	if len(scores) > 5 {
		scores = scores[:5]
	}
	points := []string{}
	for _, s := range scores {
		points = append(points, fmt.Sprintf("'%s' mentioned %d times across comments", s.term, s.score))
	}
	return points
}
