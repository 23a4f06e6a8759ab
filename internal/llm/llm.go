package llm

import "context"

// Client abstracts LLM providers for resume review.
type Client interface {
	// SuggestImprovements takes the extracted resume text and returns
	// markdown-formatted improvement suggestions verbatim from the provider.
	SuggestImprovements(ctx context.Context, resumeText string) (string, error)
}
