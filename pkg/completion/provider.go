package completion

import "context"

// Request is one completion call.
type Request struct {
	System      string  // System instruction
	User        string  // User message
	Temperature float32 // Sampling temperature
	MaxTokens   int     // Upper bound on generated tokens
	JSON        bool    // Ask the service for a JSON object
}

// Provider is a completion backend. Implementations return the generated
// text of a single attempt; retries are handled by [Client].
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, req Request) (string, error)

func (f ProviderFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
