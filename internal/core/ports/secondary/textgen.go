package secondary

import "context"

// TextGenerator produces free-form text from a prompt. Backed by the
// Gemini API in production.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
