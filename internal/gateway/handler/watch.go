package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"regulens/internal/toolkit"
)

// WatchHandler streams tool-by-tool analysis progress over a
// websocket, running the deterministic pipeline without the model.
type WatchHandler struct {
	tools    *toolkit.Interface
	upgrader websocket.Upgrader
}

func NewWatchHandler(tools *toolkit.Interface) *WatchHandler {
	return &WatchHandler{
		tools: tools,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

type watchEvent struct {
	Stage  string          `json:"stage"`
	Status string          `json:"status"`
	Result json.RawMessage `json:"result,omitempty"`
}

// HandleWatch upgrades the connection and executes each tool in order,
// emitting one event when a stage starts and one when it completes.
// The analysis result feeds the downstream synthesis stages.
func (h *WatchHandler) HandleWatch(w http.ResponseWriter, r *http.Request) {
	documentID := strings.TrimSpace(r.URL.Query().Get("document_id"))
	if documentID == "" {
		writeError(w, http.StatusBadRequest, "document_id parameter is required")
		return
	}
	maxComments := queryInt(r, "max_comments", 30)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("watch: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	send := func(ev watchEvent) bool {
		if err := conn.WriteJSON(ev); err != nil {
			log.Printf("watch: write failed for document %s: %v", documentID, err)
			return false
		}
		return true
	}

	run := func(name string, params json.RawMessage) (json.RawMessage, bool) {
		if !send(watchEvent{Stage: name, Status: "running"}) {
			return nil, false
		}
		result := h.tools.Execute(ctx, name, params)
		if !send(watchEvent{Stage: name, Status: "complete", Result: result}) {
			return nil, false
		}
		return result, true
	}

	docParams, _ := json.Marshal(map[string]any{"document_id": documentID})

	if _, ok := run(toolkit.ToolTestConnection, nil); !ok {
		return
	}
	if _, ok := run(toolkit.ToolCommentCount, docParams); !ok {
		return
	}

	analyzeParams, _ := json.Marshal(map[string]any{
		"document_id":    documentID,
		"max_comments":   maxComments,
		"analysis_depth": "comprehensive",
	})
	analyzed, ok := run(toolkit.ToolAnalyzeComments, analyzeParams)
	if !ok {
		return
	}

	downstream, _ := json.Marshal(map[string]any{"analysis_results": analyzed})
	for _, name := range []string{
		toolkit.ToolSynthesizeInsights,
		toolkit.ToolIdentifyThemes,
		toolkit.ToolAssessConcerns,
	} {
		if _, ok := run(name, downstream); !ok {
			return
		}
	}

	_ = conn.WriteJSON(watchEvent{Stage: "pipeline", Status: "complete"})
}
