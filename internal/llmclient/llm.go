// Package llmclient holds the generation-endpoint clients. Each client
// only focuses on the API call itself; prompt construction and response
// parsing live in the bridge layer.
package llmclient

import (
	"context"
	"fmt"
)

// Options controls sampling for a single generation request.
type Options struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Generator produces free-form text for a prompt.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
	Close() error
}

// ConnectivityError reports an unreachable or failing generation
// endpoint. The message always names the endpoint.
type ConnectivityError struct {
	Endpoint string
	Err      error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("cannot connect to generation model at %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }
