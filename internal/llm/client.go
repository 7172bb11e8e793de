package llm

import "context"

// Request is one text-generation call. JSONOnly asks providers that support
// it to constrain output to a single JSON object; it is advisory for the rest.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
	JSONOnly    bool
}

// Client is the provider-neutral generation boundary. Calls are synchronous
// and unretried; cancellation comes from ctx only.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}
