package analysis

import "strings"

const maxRecommendations = 10

// splitSentences splits text on '.', '!' and '?' without trimming the
// pieces of surrounding context; callers trim per sentence.
func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

// extractRecommendations finds comments matching any recommendation
// phrase and keeps, per match, the first sentence sharing a word with
// the phrase. Results are deduplicated and capped.
func extractRecommendations(c Corpus, phrases []RecommendationPhrase) []string {
	recs := []string{}
	seen := map[string]bool{}
	for _, text := range c.Texts {
		lower := strings.ToLower(text)
		for _, phrase := range phrases {
			if phrase.pattern == nil || !phrase.pattern.MatchString(lower) {
				continue
			}
			for _, sentence := range splitSentences(text) {
				sl := strings.ToLower(sentence)
				shared := false
				for _, w := range phrase.Words {
					if strings.Contains(sl, w) {
						shared = true
						break
					}
				}
				if !shared {
					continue
				}
				s := strings.TrimSpace(sentence)
				if s != "" && !seen[s] {
					seen[s] = true
					recs = append(recs, s)
				}
				break
			}
		}
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
