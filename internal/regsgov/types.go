package regsgov

import "strings"

// Comment is a single public submission on a regulatory document,
// as returned by the regulations.gov v4 API. Immutable once fetched.
type Comment struct {
	ID                  string `json:"id"`
	CommentOnDocumentID string `json:"comment_on_document_id"`
	CommentText         string `json:"comment_text"`
	SubmitterName       string `json:"submitter_name,omitempty"`
	OrganizationName    string `json:"organization_name,omitempty"`
	FirstName           string `json:"first_name,omitempty"`
	LastName            string `json:"last_name,omitempty"`
	PostedDate          string `json:"posted_date"`
	Title               string `json:"title,omitempty"`
	DocketID            string `json:"docket_id"`
	AgencyID            string `json:"agency_id"`
}

// DeriveDocketID derives a docket ID from a document ID by keeping the
// first three dash-separated parts (AGENCY-YEAR-DOCKET).
func DeriveDocketID(documentID string) string {
	if documentID == "" {
		return ""
	}
	parts := strings.Split(documentID, "-")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, "-")
}
