package analysis

import "strings"

// ConcernSet buckets templated concern strings by stakeholder type.
// Common accumulates every concern across both buckets, deduplicated.
type ConcernSet struct {
	Organizations []string `json:"organizations"`
	Individuals   []string `json:"individuals"`
	Common        []string `json:"common"`
}

// analyzeConcerns evaluates each concern pattern per comment. A match
// produces "<Concern Type>: <first 100 chars>..." routed by the
// comment's stakeholder type.
func analyzeConcerns(c Corpus, patterns []KeywordCategory) ConcernSet {
	set := ConcernSet{
		Organizations: []string{},
		Individuals:   []string{},
		Common:        []string{},
	}
	seen := map[string]bool{}
	for i, text := range c.Texts {
		lower := strings.ToLower(text)
		stakeholderType := StakeholderIndividual
		if i < len(c.Stakeholders) {
			stakeholderType = c.Stakeholders[i].Type
		}
		for _, pat := range patterns {
			matched := false
			for _, kw := range pat.Keywords {
				if strings.Contains(lower, kw) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
			concern := concernTitle(pat.Name) + ": " + truncateRunes(text, 100) + "..."
			if stakeholderType == StakeholderOrganization {
				set.Organizations = append(set.Organizations, concern)
			} else {
				set.Individuals = append(set.Individuals, concern)
			}
			if !seen[concern] {
				seen[concern] = true
				set.Common = append(set.Common, concern)
			}
		}
	}
	return set
}

// concernTitle turns "cost_concerns" into "Cost Concerns".
func concernTitle(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
