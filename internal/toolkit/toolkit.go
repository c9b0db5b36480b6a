// Package toolkit exposes the analysis pipeline as a set of named,
// schema-described operations and dispatches invocations by name. Every
// call returns a structured envelope with a success flag; one tool's
// failure never propagates to a sibling call.
package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"regulens/internal/analysis"
	"regulens/internal/regsgov"
)

// CommentSource is the comment-source collaborator boundary.
type CommentSource interface {
	GetDocumentCommentCount(ctx context.Context, documentID string) (int, error)
	FetchCommentsByDocumentID(ctx context.Context, documentID string, maxComments int) ([]regsgov.Comment, error)
	TestConnection(ctx context.Context) (string, error)
}

// ValidationError marks a tool invocation missing a required parameter.
type ValidationError struct {
	Param string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Param)
}

// Interface holds the tool registrations and their shared collaborators.
type Interface struct {
	source   CommentSource
	analyzer *analysis.Analyzer
	now      func() time.Time
}

// New builds a tool interface over the given comment source.
func New(source CommentSource) *Interface {
	return &Interface{
		source:   source,
		analyzer: analysis.New(),
		now:      time.Now,
	}
}

// Invocation names a tool and carries its raw parameters.
type Invocation struct {
	Name       string          `json:"tool"`
	Parameters json.RawMessage `json:"parameters"`
}

// errorEnvelope is the failure shape shared by every tool.
type errorEnvelope struct {
	Success        bool     `json:"success"`
	Error          string   `json:"error"`
	Tool           string   `json:"tool,omitempty"`
	DocumentID     string   `json:"document_id,omitempty"`
	AvailableTools []string `json:"available_tools,omitempty"`
}

// Execute dispatches a tool invocation by name. Unknown names yield an
// error envelope listing the available tools; any failure (including a
// panic from a defective extractor) is caught at this boundary and
// converted into an error envelope, never re-raised to the caller.
func (t *Interface) Execute(ctx context.Context, name string, params json.RawMessage) (result json.RawMessage) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("toolkit: panic executing tool %s: %v", name, r)
			result = marshalEnvelope(errorEnvelope{
				Success: false,
				Error:   fmt.Sprint(r),
				Tool:    name,
			})
		}
	}()

	switch name {
	case ToolAnalyzeComments:
		return t.analyzeComments(ctx, params)
	case ToolCommentCount:
		return t.commentCount(ctx, params)
	case ToolSynthesizeInsights:
		return t.synthesizeInsights(params)
	case ToolIdentifyThemes:
		return t.identifyThemes(params)
	case ToolAssessConcerns:
		return t.assessConcerns(params)
	case ToolTestConnection:
		return t.testConnection(ctx)
	default:
		return marshalEnvelope(errorEnvelope{
			Success:        false,
			Error:          fmt.Sprintf("Unknown tool: %s", name),
			AvailableTools: ToolNames(),
		})
	}
}

func (t *Interface) toolError(name, documentID string, err error) json.RawMessage {
	log.Printf("toolkit: error executing tool %s: %v", name, err)
	return marshalEnvelope(errorEnvelope{
		Success:    false,
		Error:      err.Error(),
		Tool:       name,
		DocumentID: documentID,
	})
}

func marshalEnvelope(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`{"success":false,"error":"internal marshal failure"}`)
	}
	return b
}

func (t *Interface) timestamp() string {
	return t.now().Format(time.RFC3339)
}
