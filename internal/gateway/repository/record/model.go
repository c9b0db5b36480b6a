// Package record persists personas, tracked regulatory documents and
// draft comments in Postgres.
package record

import "time"

type Persona struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Interests []string  `json:"interests"`
	CreatedAt time.Time `json:"created_at"`
}

type Document struct {
	ID              int64      `json:"id"`
	DocumentID      string     `json:"document_id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	AgencyID        string     `json:"agency_id"`
	DocumentType    string     `json:"document_type"`
	WebCommentLink  string     `json:"web_comment_link"`
	WebDocumentLink string     `json:"web_document_link"`
	WebDocketLink   string     `json:"web_docket_link"`
	DocketID        string     `json:"docket_id"`
	PostedDate      *time.Time `json:"posted_date"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Comment statuses.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
)

type Comment struct {
	ID         int64     `json:"id"`
	PersonaID  int64     `json:"persona_id"`
	DocumentID string    `json:"document_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
