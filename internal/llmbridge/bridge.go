// Package llmbridge drives a generation model through the regulatory
// comment toolkit: it builds the analysis prompt, sends it to the
// configured backend, and parses the structured response with a
// fallback chain that always yields a usable analysis document.
package llmbridge

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"regulens/internal/llmclient"
	"regulens/internal/toolkit"
)

const (
	analysisTimeout = 120 * time.Second
	probeTimeout    = 10 * time.Second
)

// Bridge couples a text generator with the tool interface. The tool
// interface is also used directly for quick operations (counts,
// connectivity probes) that do not need the model.
type Bridge struct {
	gen   llmclient.Generator
	tools *toolkit.Interface
}

func New(gen llmclient.Generator, tools *toolkit.Interface) *Bridge {
	return &Bridge{gen: gen, tools: tools}
}

// Outcome is the bridge-level analysis envelope.
type Outcome struct {
	Success     bool           `json:"success"`
	DocumentID  string         `json:"document_id"`
	Analysis    map[string]any `json:"analysis,omitempty"`
	RawResponse string         `json:"raw_response,omitempty"`
	ParseMode   ParseMode      `json:"parse_mode,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// AnalyzeDocumentComments runs the full model-driven analysis for a
// document. Transport failures surface as a failed outcome; parse
// failures never do, they degrade the analysis instead.
func (b *Bridge) AnalyzeDocumentComments(ctx context.Context, documentID, documentTitle string, maxComments int) Outcome {
	prompt := buildAnalysisPrompt(documentID, documentTitle, maxComments)

	ctx, cancel := context.WithTimeout(ctx, analysisTimeout)
	defer cancel()

	log.Printf("llmbridge: calling %s for comment analysis: %s", b.gen.Name(), documentID)
	raw, err := b.gen.Generate(ctx, prompt, llmclient.Options{
		Temperature: 0.3,
		TopP:        0.8,
		MaxTokens:   4000,
	})
	if err != nil {
		log.Printf("llmbridge: error analyzing comments for document %s: %v", documentID, err)
		return Outcome{Success: false, DocumentID: documentID, Error: err.Error()}
	}

	analysis, mode := parseAnalysisResponse(raw)
	return Outcome{
		Success:     true,
		DocumentID:  documentID,
		Analysis:    analysis,
		RawResponse: raw,
		ParseMode:   mode,
	}
}

// CommentCount returns the quick count envelope for a document without
// involving the model.
func (b *Bridge) CommentCount(ctx context.Context, documentID string) json.RawMessage {
	params, _ := json.Marshal(map[string]string{"document_id": documentID})
	return b.tools.Execute(ctx, toolkit.ToolCommentCount, params)
}

// ConnectionStatus reports reachability of both the regulations.gov API
// and the generation backend.
type ConnectionStatus struct {
	Success        bool            `json:"success"`
	RegulationsAPI json.RawMessage `json:"regulations_api"`
	Generator      probeResult     `json:"generator"`
	Config         probeConfig     `json:"config"`
}

type probeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type probeConfig struct {
	Model string `json:"model"`
}

// TestConnection probes the regulations.gov API through the toolkit and
// sends a tiny generation request to the model backend.
func (b *Bridge) TestConnection(ctx context.Context) ConnectionStatus {
	apiRaw := b.tools.Execute(ctx, toolkit.ToolTestConnection, nil)
	var apiEnvelope struct {
		Success bool `json:"success"`
	}
	_ = json.Unmarshal(apiRaw, &apiEnvelope)

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	gen := probeResult{Success: true, Message: "Generation model connection successful"}
	if _, err := b.gen.Generate(probeCtx, "Test connection", llmclient.Options{
		Temperature: 0.1,
		MaxTokens:   10,
	}); err != nil {
		gen = probeResult{Success: false, Message: "Generation model connection failed: " + err.Error()}
	}

	return ConnectionStatus{
		Success:        apiEnvelope.Success && gen.Success,
		RegulationsAPI: apiRaw,
		Generator:      gen,
		Config:         probeConfig{Model: b.gen.Name()},
	}
}
