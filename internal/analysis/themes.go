package analysis

import (
	"sort"
	"strings"
)

// Theme is a named regulatory topic with a frequency-derived relevance score.
type Theme struct {
	Name           string   `json:"theme"`
	Frequency      int      `json:"frequency"`
	KeywordsFound  []string `json:"keywords_found"`
	RelevanceScore float64  `json:"relevance_score"`
}

const maxThemes = 5

// detectThemes counts aggregate keyword occurrences over the whole
// lower-cased corpus text. A theme is emitted only when its frequency is
// positive. The result is sorted by relevance descending; equal scores
// keep the theme-table declaration order.
func detectThemes(c Corpus, patterns []KeywordCategory) []Theme {
	allText := c.joinedLower()
	themes := []Theme{}
	for _, cat := range patterns {
		frequency := 0
		found := []string{}
		for _, kw := range cat.Keywords {
			n := strings.Count(allText, kw)
			frequency += n
			if n > 0 {
				found = append(found, kw)
			}
		}
		if frequency == 0 {
			continue
		}
		score := float64(frequency) / float64(len(c.Texts))
		if score > 1.0 {
			score = 1.0
		}
		themes = append(themes, Theme{
			Name:           cat.Name,
			Frequency:      frequency,
			KeywordsFound:  found,
			RelevanceScore: score,
		})
	}
	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].RelevanceScore > themes[j].RelevanceScore
	})
	if len(themes) > maxThemes {
		themes = themes[:maxThemes]
	}
	return themes
}
