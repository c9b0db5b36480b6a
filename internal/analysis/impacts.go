package analysis

import "strings"

// ImpactAssessment reports how many comments mention an impact category.
// MentionCount counts comments, not keyword occurrences.
type ImpactAssessment struct {
	Type             string  `json:"impact_type"`
	MentionCount     int     `json:"mention_count"`
	AffectedComments []int   `json:"affected_comments"`
	ImpactScore      float64 `json:"impact_score"`
}

// assessImpacts checks each comment against each impact category and
// emits a category only when at least one comment mentions it.
// AffectedComments indexes into the corpus Texts sequence.
func assessImpacts(c Corpus, categories []KeywordCategory) []ImpactAssessment {
	impacts := []ImpactAssessment{}
	for _, cat := range categories {
		mentions := 0
		affected := []int{}
		for i, text := range c.Texts {
			lower := strings.ToLower(text)
			for _, kw := range cat.Keywords {
				if strings.Contains(lower, kw) {
					mentions++
					affected = append(affected, i)
					break
				}
			}
		}
		if mentions == 0 {
			continue
		}
		impacts = append(impacts, ImpactAssessment{
			Type:             cat.Name,
			MentionCount:     mentions,
			AffectedComments: affected,
			ImpactScore:      float64(mentions) / float64(len(c.Texts)),
		})
	}
	return impacts
}
