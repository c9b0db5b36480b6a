package archive

import (
	"context"
	"log"
)

// Document is the API shape of one archived document snapshot.
type Document struct {
	DocumentID      string    `json:"documentId"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	DocketID        string    `json:"docketId"`
	AgencyID        string    `json:"agencyId"`
	DocumentType    string    `json:"documentType"`
	WebDocumentLink string    `json:"webDocumentLink"`
	WebDocketLink   string    `json:"webDocketLink"`
	WebCommentLink  string    `json:"webCommentLink"`
	Embedding       []float64 `json:"embedding"`
	S3Key           string    `json:"s3Key"`
	Metadata        Metadata  `json:"metadata"`
}

type Metadata struct {
	HasEmbedding    bool `json:"hasEmbedding"`
	EmbeddingLength int  `json:"embeddingLength"`
	ContentLength   int  `json:"contentLength"`
}

// Pagination describes the window a document page was cut from.
type Pagination struct {
	Limit           int  `json:"limit"`
	Offset          int  `json:"offset"`
	Total           int  `json:"total"`
	HasMore         bool `json:"has_more"`
	CurrentPageSize int  `json:"current_page_size"`
}

// Page is one page of archived documents.
type Page struct {
	Documents  []Document `json:"documents"`
	Pagination Pagination `json:"pagination"`
}

// FetchDocuments lists, fetches and formats a page of archived
// documents. Unreadable objects are logged and skipped, not fatal.
func (s *Store) FetchDocuments(ctx context.Context, limit, offset int) (Page, error) {
	limit, offset = clampPagination(limit, offset)

	total, err := s.TotalCount(ctx)
	if err != nil {
		return Page{}, err
	}

	keys, err := s.ListJSONKeys(ctx, limit, offset)
	if err != nil {
		return Page{}, err
	}

	documents := make([]Document, 0, len(keys))
	for _, key := range keys {
		data, err := s.GetObjectJSON(ctx, key)
		if err != nil {
			log.Printf("archive: skipping object %s: %v", key, err)
			continue
		}
		documents = append(documents, extractDocuments(data, key)...)
	}

	hasMore := total > 0 && offset+len(documents) < total
	return Page{
		Documents: documents,
		Pagination: Pagination{
			Limit:           limit,
			Offset:          offset,
			Total:           total,
			HasMore:         hasMore,
			CurrentPageSize: len(documents),
		},
	}, nil
}

// extractDocuments flattens one decoded object into documents. JSONL
// wrappers contribute one document per record; single objects must
// carry an embedding field to count as a document.
func extractDocuments(data map[string]any, key string) []Document {
	if data["format"] == "jsonl" {
		items, _ := data["items"].([]any)
		out := make([]Document, 0, len(items))
		for _, item := range items {
			record, ok := item.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, formatDocument(record, key))
		}
		return out
	}
	if _, ok := data["embedding"]; ok {
		return []Document{formatDocument(data, key)}
	}
	log.Printf("archive: no document data in object %s", key)
	return nil
}

func formatDocument(data map[string]any, key string) Document {
	content := stringField(data, "content")
	embedding := floatSlice(data["embedding"])
	return Document{
		DocumentID:      stringField(data, "documentId"),
		Title:           stringField(data, "title"),
		Content:         content,
		DocketID:        stringField(data, "docketId"),
		AgencyID:        stringField(data, "agencyId"),
		DocumentType:    stringField(data, "documentType"),
		WebDocumentLink: stringField(data, "webDocumentLink"),
		WebDocketLink:   stringField(data, "webDocketLink"),
		WebCommentLink:  stringField(data, "webCommentLink"),
		Embedding:       embedding,
		S3Key:           key,
		Metadata: Metadata{
			HasEmbedding:    len(embedding) > 0,
			EmbeddingLength: len(embedding),
			ContentLength:   len(content),
		},
	}
}

func stringField(data map[string]any, key string) string {
	v, _ := data[key].(string)
	return v
}

func floatSlice(v any) []float64 {
	raw, ok := v.([]any)
	if !ok {
		return []float64{}
	}
	out := make([]float64, 0, len(raw))
	for _, item := range raw {
		if f, ok := item.(float64); ok {
			out = append(out, f)
		}
	}
	return out
}
