package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"regulens/internal/gateway/repository/record"
)

type RecordHandler struct {
	store *record.Store
}

func NewRecordHandler(store *record.Store) *RecordHandler {
	return &RecordHandler{store: store}
}

func (h *RecordHandler) available(w http.ResponseWriter) bool {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "record store is not configured")
		return false
	}
	return true
}

func (h *RecordHandler) HandleCreatePersona(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	var p record.Persona
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	created, err := h.store.CreatePersona(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RecordHandler) HandleGetPersona(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid persona id")
		return
	}
	p, err := h.store.GetPersona(r.Context(), id)
	if errors.Is(err, record.ErrNotFound) {
		writeError(w, http.StatusNotFound, "persona not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *RecordHandler) HandleListDocuments(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	limit := queryInt(r, "limit", 10)
	offset := queryInt(r, "offset", 0)
	docs, err := h.store.ListDocuments(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (h *RecordHandler) HandleGetDocument(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	d, err := h.store.GetDocument(r.Context(), r.PathValue("document_id"))
	if errors.Is(err, record.ErrNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *RecordHandler) HandleBulkDocuments(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	var docs []record.Document
	if err := json.NewDecoder(r.Body).Decode(&docs); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	n, err := h.store.UpsertDocuments(r.Context(), docs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "inserted": n})
}

func (h *RecordHandler) HandleClearDocuments(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	if err := h.store.ClearDocuments(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *RecordHandler) HandleCreateComment(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	var c record.Comment
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if pid := strings.TrimSpace(r.URL.Query().Get("persona_id")); pid != "" {
		id, err := strconv.ParseInt(pid, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid persona_id")
			return
		}
		c.PersonaID = id
	}
	created, err := h.store.CreateComment(r.Context(), c)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RecordHandler) HandleGetComment(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}
	c, err := h.store.GetComment(r.Context(), id)
	if errors.Is(err, record.ErrNotFound) {
		writeError(w, http.StatusNotFound, "comment not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
