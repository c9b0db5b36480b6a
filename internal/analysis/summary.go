package analysis

import (
	"fmt"
	"strings"
)

// synthesizeSummary composes the deterministic digest. It always opens
// with the comment total, then appends sentiment, perspectives, the
// top theme, the strongest impact category and the distinct common
// concern count, joined with single spaces.
func synthesizeSummary(total int, sentiment string, perspectives []string, themes []Theme, impacts []ImpactAssessment, concerns ConcernSet) string {
	parts := []string{
		fmt.Sprintf("Analysis of %d public comments reveals:", total),
		fmt.Sprintf("Overall sentiment: %s", sentiment),
	}
	if len(perspectives) > 0 {
		parts = append(parts, fmt.Sprintf("Common perspectives: %s", strings.Join(perspectives, "; ")))
	}
	if len(themes) > 0 {
		top := themes[0]
		parts = append(parts, fmt.Sprintf("Primary regulatory theme: %s (mentioned %d times)", top.Name, top.Frequency))
	}
	if len(impacts) > 0 {
		// Ties keep the first category in table order.
		top := impacts[0]
		for _, imp := range impacts[1:] {
			if imp.ImpactScore > top.ImpactScore {
				top = imp
			}
		}
		parts = append(parts, fmt.Sprintf("Main impact area: %s (mentioned in %d comments)", top.Type, top.MentionCount))
	}
	if len(concerns.Common) > 0 {
		parts = append(parts, fmt.Sprintf("Common concerns identified: %d distinct issues", len(concerns.Common)))
	}
	return strings.Join(parts, " ")
}
