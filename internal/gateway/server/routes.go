package server

import (
	"net/http"

	"regulens/internal/gateway/handler"
	"regulens/internal/gateway/middleware"
)

func NewMux(
	analysisHandler *handler.AnalysisHandler,
	recordHandler *handler.RecordHandler,
	archiveHandler *handler.ArchiveHandler,
	watchHandler *handler.WatchHandler,
) http.Handler {
	mux := http.NewServeMux()

	// Analysis surface
	mux.HandleFunc("/health", analysisHandler.HandleHealth)
	mux.HandleFunc("/test", analysisHandler.HandleTest)
	mux.HandleFunc("/count", analysisHandler.HandleCount)
	mux.HandleFunc("/analyze", analysisHandler.HandleAnalyze)
	mux.HandleFunc("/analyze/watch", watchHandler.HandleWatch)

	// Record CRUD
	mux.HandleFunc("POST /personas", recordHandler.HandleCreatePersona)
	mux.HandleFunc("GET /personas/{id}", recordHandler.HandleGetPersona)
	mux.HandleFunc("GET /documents", recordHandler.HandleListDocuments)
	mux.HandleFunc("POST /documents/bulk", recordHandler.HandleBulkDocuments)
	mux.HandleFunc("POST /documents/clear", recordHandler.HandleClearDocuments)
	mux.HandleFunc("GET /documents/{document_id}", recordHandler.HandleGetDocument)
	mux.HandleFunc("POST /comments", recordHandler.HandleCreateComment)
	mux.HandleFunc("GET /comments/{id}", recordHandler.HandleGetComment)

	// Archived snapshots
	mux.HandleFunc("GET /archive/documents", archiveHandler.HandleListDocuments)

	// Middleware
	return middleware.CORS(mux)
}
