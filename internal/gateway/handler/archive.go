package handler

import (
	"fmt"
	"net/http"

	"regulens/internal/gateway/repository/archive"
)

type ArchiveHandler struct {
	store *archive.Store
}

func NewArchiveHandler(store *archive.Store) *ArchiveHandler {
	return &ArchiveHandler{store: store}
}

// HandleListDocuments serves a page of archived document snapshots.
func (h *ArchiveHandler) HandleListDocuments(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "archive store is not configured")
		return
	}
	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	page, err := h.store.FetchDocuments(r.Context(), limit, offset)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Internal server error: " + err.Error(),
			"message": "Failed to retrieve documents from S3",
		})
		return
	}

	message := fmt.Sprintf("Successfully retrieved %d documents", len(page.Documents))
	if len(page.Documents) == 0 {
		message = "No documents found"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    page,
		"message": message,
	})
}
