// Package textgen wraps the external text generation service used to draft posts.
package textgen

import "context"

// Request is one prompt sent to a text generation service.
type Request struct {
	Prompt string

	// ContentKind is the archetype name, passed through for provider-side routing and logs.
	ContentKind string
}

// Response carries the generated Markdown.
type Response struct {
	Content string
}

// Service generates text for a prompt. Any error, including a timeout,
// means the caller should use its fallback path.
type Service interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Func adapts a plain function to Service.
type Func func(ctx context.Context, req Request) (*Response, error)

// Generate calls f.
func (f Func) Generate(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}
