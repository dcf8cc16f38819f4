package nlp

import "context"

// ContentGenerator puerto hacia el LLM. La implementación Gemini vive en
// infrastructure/genai.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
