package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OllamaClient calls an Ollama-compatible /api/generate endpoint with
// stream disabled. Timeouts come from the caller's context; the client
// itself sets none, and nothing is retried.
type OllamaClient struct {
	http    *http.Client
	baseURL string
	model   string
}

// NewOllamaClient creates a client for http://<host>:<port>/api/generate.
func NewOllamaClient(host, port, model string) (*OllamaClient, error) {
	if host == "" || port == "" {
		return nil, fmt.Errorf("llmclient: ollama host and port are required")
	}
	if model == "" {
		return nil, fmt.Errorf("llmclient: ollama model is required")
	}
	return &OllamaClient{
		http:    &http.Client{},
		baseURL: fmt.Sprintf("http://%s:%s/api/generate", host, port),
		model:   model,
	}, nil
}

func (o *OllamaClient) Name() string { return "Ollama:" + o.model }
func (o *OllamaClient) Close() error { return nil }

// Endpoint returns the generate URL, for error reporting and logs.
func (o *OllamaClient) Endpoint() string { return o.baseURL }

type ollamaGenerateReq struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p,omitempty"`
	MaxTokens   int     `json:"max_tokens"`
}

type ollamaGenerateResp struct {
	Response string `json:"response"`
}

// Generate posts the prompt and returns the raw response text.
// Unreachable endpoints and 5xx responses surface as ConnectivityError.
func (o *OllamaClient) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	body, _ := json.Marshal(ollamaGenerateReq{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: opts.Temperature,
			TopP:        opts.TopP,
			MaxTokens:   opts.MaxTokens,
		},
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.http.Do(req)
	if err != nil {
		return "", &ConnectivityError{Endpoint: o.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		if resp.StatusCode >= 500 {
			return "", &ConnectivityError{Endpoint: o.baseURL, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
		}
		return "", fmt.Errorf("llmclient: HTTP %d: %s", resp.StatusCode, string(text))
	}

	var out ollamaGenerateResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Response, nil
}
