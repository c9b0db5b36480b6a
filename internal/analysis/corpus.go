package analysis

import (
	"strings"

	"regulens/internal/regsgov"
)

// Stakeholder describes who submitted a comment.
type Stakeholder struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Organization string `json:"organization"`
}

// Stakeholder types.
const (
	StakeholderOrganization = "organization"
	StakeholderIndividual   = "individual"
)

// Corpus is an ephemeral, per-request view over a batch of comments.
// Comments with empty text are skipped, so extractor comment indices
// point into Texts, not into the original input. Total still counts
// every input comment.
type Corpus struct {
	Texts        []string
	Stakeholders []Stakeholder
	Dates        []string
	Total        int
}

// BuildCorpus normalizes raw comments into an analyzable corpus.
// An empty input yields a Corpus with Total 0; there is no error case.
func BuildCorpus(comments []regsgov.Comment) Corpus {
	c := Corpus{
		Texts:        []string{},
		Stakeholders: []Stakeholder{},
		Dates:        []string{},
		Total:        len(comments),
	}
	for _, cm := range comments {
		if cm.CommentText == "" {
			continue
		}
		c.Texts = append(c.Texts, cm.CommentText)

		name := cm.SubmitterName
		if name == "" {
			name = cm.OrganizationName
		}
		st := Stakeholder{
			Name:         name,
			Type:         StakeholderIndividual,
			Organization: cm.OrganizationName,
		}
		if cm.OrganizationName != "" {
			st.Type = StakeholderOrganization
		}
		c.Stakeholders = append(c.Stakeholders, st)

		if cm.PostedDate != "" {
			c.Dates = append(c.Dates, cm.PostedDate)
		}
	}
	return c
}

// joinedLower returns the whole corpus as one lower-cased string.
func (c Corpus) joinedLower() string {
	return strings.ToLower(strings.Join(c.Texts, " "))
}
