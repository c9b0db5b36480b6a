// Package regsgov is the regulations.gov v4 API client. It resolves a
// document ID to its internal object ID, lists comments filtered by that
// object ID and fetches per-comment detail. No retries: a failed call
// surfaces immediately.
package regsgov

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultBaseURL = "https://api.regulations.gov/v4"

// APIError categorizes a non-2xx response by status code range.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return "invalid regulations.gov API key, please check your API key"
	case http.StatusForbidden:
		return "API key access denied, please verify your regulations.gov API key permissions"
	case http.StatusTooManyRequests:
		return "API rate limit exceeded, please try again later"
	default:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
}

// Client talks to the regulations.gov API. Document object IDs are
// immutable per document, so resolved IDs are kept in an LRU cache.
type Client struct {
	http    *http.Client
	apiKey  string
	baseURL string

	objectIDs *lru.Cache[string, string]
}

// NewClient creates a client. The API key is required.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("regsgov: no regulations.gov API key configured")
	}
	cache, err := lru.New[string, string](1024)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:      &http.Client{Timeout: 30 * time.Second},
		apiKey:    apiKey,
		baseURL:   defaultBaseURL,
		objectIDs: cache,
	}, nil
}

// SetBaseURL overrides the API endpoint, for tests.
func (c *Client) SetBaseURL(base string) { c.baseURL = base }

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Regulens-Regulatory-Analysis/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("regsgov: failed to connect to regulations.gov API: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type documentResponse struct {
	Data struct {
		Attributes struct {
			ObjectID string `json:"objectId"`
		} `json:"attributes"`
	} `json:"data"`
}

type commentListResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
	Meta struct {
		TotalElements int `json:"totalElements"`
	} `json:"meta"`
}

type commentDetailResponse struct {
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			CommentOnDocumentID string `json:"commentOnDocumentId"`
			Comment             string `json:"comment"`
			CommentText         string `json:"commentText"`
			SubmitterName       string `json:"submitterName"`
			OrganizationName    string `json:"organizationName"`
			FirstName           string `json:"firstName"`
			LastName            string `json:"lastName"`
			PostedDate          string `json:"postedDate"`
			Title               string `json:"title"`
			DocketID            string `json:"docketId"`
			AgencyID            string `json:"agencyId"`
		} `json:"attributes"`
	} `json:"data"`
}

// getDocumentObjectID resolves a document ID to its internal object ID.
// A document without one yields "" with no error; request failures
// propagate.
func (c *Client) getDocumentObjectID(ctx context.Context, documentID string) (string, error) {
	if id, ok := c.objectIDs.Get(documentID); ok {
		return id, nil
	}
	var doc documentResponse
	if err := c.get(ctx, "/documents/"+url.PathEscape(documentID), nil, &doc); err != nil {
		return "", err
	}
	objectID := doc.Data.Attributes.ObjectID
	if objectID == "" {
		log.Printf("regsgov: no objectId found for document %s", documentID)
		return "", nil
	}
	c.objectIDs.Add(documentID, objectID)
	return objectID, nil
}

// GetDocumentCommentCount returns the comment total for a document.
// A document with no resolvable object ID counts as zero.
func (c *Client) GetDocumentCommentCount(ctx context.Context, documentID string) (int, error) {
	objectID, err := c.getDocumentObjectID(ctx, documentID)
	if err != nil {
		return 0, err
	}
	if objectID == "" {
		return 0, nil
	}
	q := url.Values{}
	q.Set("filter[commentOnId]", objectID)
	q.Set("page[size]", "5")
	q.Set("sort", "-postedDate")
	var list commentListResponse
	if err := c.get(ctx, "/comments", q, &list); err != nil {
		return 0, err
	}
	return list.Meta.TotalElements, nil
}

// fetchCommentDetail fetches full detail for one comment ID.
func (c *Client) fetchCommentDetail(ctx context.Context, commentID string) (Comment, error) {
	var detail commentDetailResponse
	if err := c.get(ctx, "/comments/"+url.PathEscape(commentID), nil, &detail); err != nil {
		return Comment{}, err
	}
	attrs := detail.Data.Attributes
	text := attrs.Comment
	if text == "" {
		text = attrs.CommentText
	}
	return Comment{
		ID:                  detail.Data.ID,
		CommentOnDocumentID: attrs.CommentOnDocumentID,
		CommentText:         text,
		SubmitterName:       attrs.SubmitterName,
		OrganizationName:    attrs.OrganizationName,
		FirstName:           attrs.FirstName,
		LastName:            attrs.LastName,
		PostedDate:          attrs.PostedDate,
		Title:               attrs.Title,
		DocketID:            attrs.DocketID,
		AgencyID:            attrs.AgencyID,
	}, nil
}

// FetchCommentsByDocumentID lists the most recent comment IDs for a
// document and fetches detail for each, skipping comments attached to a
// different document. Per-comment fetch failures are logged and skipped;
// list-level failures propagate.
func (c *Client) FetchCommentsByDocumentID(ctx context.Context, documentID string, maxComments int) ([]Comment, error) {
	objectID, err := c.getDocumentObjectID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if objectID == "" {
		log.Printf("regsgov: no objectId for document, no comments available: %s", documentID)
		return []Comment{}, nil
	}

	q := url.Values{}
	q.Set("filter[commentOnId]", objectID)
	q.Set("page[size]", fmt.Sprintf("%d", maxComments))
	q.Set("sort", "-postedDate")
	var list commentListResponse
	if err := c.get(ctx, "/comments", q, &list); err != nil {
		return nil, err
	}
	if len(list.Data) == 0 {
		log.Printf("regsgov: no comments found for document: %s", documentID)
		return []Comment{}, nil
	}

	n := len(list.Data)
	if n > maxComments {
		log.Printf("regsgov: document %s has %d comments, limiting to %d most recent", documentID, n, maxComments)
		n = maxComments
	}

	comments := []Comment{}
	for _, summary := range list.Data[:n] {
		detail, err := c.fetchCommentDetail(ctx, summary.ID)
		if err != nil {
			log.Printf("regsgov: error fetching details for comment %s: %v", summary.ID, err)
			continue
		}
		if detail.CommentOnDocumentID != documentID {
			log.Printf("regsgov: comment %s is not for document %s, skipping", summary.ID, documentID)
			continue
		}
		comments = append(comments, detail)
	}
	return comments, nil
}

// TestConnection probes the API. The dockets endpoint is tried first;
// keys without docket access fall back to the comments endpoint.
func (c *Client) TestConnection(ctx context.Context) (string, error) {
	q := url.Values{}
	q.Set("filter[agencyId]", "EPA")
	q.Set("page[size]", "5")

	var probe json.RawMessage
	err := c.get(ctx, "/dockets", q, &probe)
	if err == nil {
		return "API key is valid and working!", nil
	}
	if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusForbidden {
		q2 := url.Values{}
		q2.Set("filter[agencyId]", "EPA")
		q2.Set("page[size]", "5")
		if err2 := c.get(ctx, "/comments", q2, &probe); err2 == nil {
			return "API key is valid! (Limited access - dockets endpoint restricted)", nil
		}
		return "", fmt.Errorf("regsgov: API key access denied, contact regulations.gov support to enable comment access")
	}
	return "", fmt.Errorf("regsgov: failed to test API connection: %w", err)
}
