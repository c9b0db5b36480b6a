package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"regulens/internal/llmbridge"
)

type AnalysisHandler struct {
	bridge *llmbridge.Bridge
}

func NewAnalysisHandler(bridge *llmbridge.Bridge) *AnalysisHandler {
	return &AnalysisHandler{bridge: bridge}
}

func (h *AnalysisHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "comment-analysis-api",
		"version": "1.0.0",
	})
}

func (h *AnalysisHandler) HandleTest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.bridge.TestConnection(r.Context()))
}

func (h *AnalysisHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	documentID := strings.TrimSpace(r.URL.Query().Get("document_id"))
	if documentID == "" {
		writeError(w, http.StatusBadRequest, "document_id parameter is required")
		return
	}
	writeRaw(w, http.StatusOK, h.bridge.CommentCount(r.Context(), documentID))
}

func (h *AnalysisHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		DocumentID    string `json:"document_id"`
		DocumentTitle string `json:"document_title"`
		MaxComments   int    `json:"max_comments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if strings.TrimSpace(in.DocumentID) == "" {
		writeError(w, http.StatusBadRequest, "document_id is required")
		return
	}
	if in.DocumentTitle == "" {
		in.DocumentTitle = "Unknown Document"
	}
	if in.MaxComments <= 0 {
		in.MaxComments = 30
	}

	log.Printf("handler: analyzing comments for document: %s", in.DocumentID)
	out := h.bridge.AnalyzeDocumentComments(r.Context(), in.DocumentID, in.DocumentTitle, in.MaxComments)
	if !out.Success {
		writeError(w, http.StatusInternalServerError, "Analysis failed: "+out.Error)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"document_id":  out.DocumentID,
		"analysis":     out.Analysis,
		"raw_response": out.RawResponse,
	})
}
