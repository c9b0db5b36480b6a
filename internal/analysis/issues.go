package analysis

import "strings"

const maxIssues = 5

// extractIssueSentences emits sentences containing any of the given
// keywords, deduplicated and capped. All four issue extractors
// (technical, economic, timeline, implementation) share this shape and
// differ only in their keyword table.
func extractIssueSentences(c Corpus, keywords []string) []string {
	issues := []string{}
	seen := map[string]bool{}
	for _, text := range c.Texts {
		lower := strings.ToLower(text)
		matched := false
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, sentence := range splitSentences(text) {
			sl := strings.ToLower(sentence)
			for _, kw := range keywords {
				if strings.Contains(sl, kw) {
					s := strings.TrimSpace(sentence)
					if s != "" && !seen[s] {
						seen[s] = true
						issues = append(issues, s)
					}
					break
				}
			}
		}
	}
	if len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}
	return issues
}
