package brain

import "context"

// Provider abstracts the AI API (Claude, Gemini, etc.).
type Provider interface {
	Complete(ctx context.Context, systemPrompt, prompt string) (string, error)
}
