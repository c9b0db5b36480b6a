package archive

import "testing"

func TestExtractDocumentsSingleObject(t *testing.T) {
	data := map[string]any{
		"documentId": "EPA-1",
		"title":      "Air Quality Standards",
		"content":    "rule text",
		"embedding":  []any{0.1, 0.2, 0.3},
	}
	docs := extractDocuments(data, "snapshots/epa-1.json")
	if len(docs) != 1 {
		t.Fatalf("docs = %d, want 1", len(docs))
	}
	d := docs[0]
	if d.DocumentID != "EPA-1" || d.S3Key != "snapshots/epa-1.json" {
		t.Errorf("doc = %+v", d)
	}
	if !d.Metadata.HasEmbedding || d.Metadata.EmbeddingLength != 3 {
		t.Errorf("metadata = %+v", d.Metadata)
	}
	if d.Metadata.ContentLength != len("rule text") {
		t.Errorf("content length = %d", d.Metadata.ContentLength)
	}
}

func TestExtractDocumentsJSONLWrapper(t *testing.T) {
	data := map[string]any{
		"format": "jsonl",
		"items": []any{
			map[string]any{"documentId": "EPA-1", "title": "First"},
			map[string]any{"documentId": "EPA-2", "title": "Second"},
			"not an object",
		},
	}
	docs := extractDocuments(data, "snapshots/batch.json")
	if len(docs) != 2 {
		t.Fatalf("docs = %d, want 2 (non-object record skipped)", len(docs))
	}
	if docs[0].DocumentID != "EPA-1" || docs[1].DocumentID != "EPA-2" {
		t.Errorf("docs = %+v", docs)
	}
	if docs[0].Metadata.HasEmbedding {
		t.Error("record without embedding must report HasEmbedding false")
	}
}

func TestExtractDocumentsRejectsObjectWithoutEmbedding(t *testing.T) {
	data := map[string]any{"documentId": "EPA-1", "title": "No embedding"}
	if docs := extractDocuments(data, "snapshots/bad.json"); len(docs) != 0 {
		t.Errorf("docs = %+v, want none", docs)
	}
}

func TestClampPagination(t *testing.T) {
	cases := []struct {
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{0, 0, 0, 0},
		{-5, -2, 10, 0},
		{5000, 3, maxListLimit, 3},
		{25, 50, 25, 50},
	}
	for _, tc := range cases {
		gotLimit, gotOffset := clampPagination(tc.limit, tc.offset)
		if gotLimit != tc.wantLimit || gotOffset != tc.wantOffset {
			t.Errorf("clampPagination(%d, %d) = (%d, %d), want (%d, %d)",
				tc.limit, tc.offset, gotLimit, gotOffset, tc.wantLimit, tc.wantOffset)
		}
	}
}
