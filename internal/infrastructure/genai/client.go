// Package genai adapta el cliente de Gemini al puerto ContentGenerator del
// módulo NLP.
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/jhoicas/smarthr-api/internal/application/nlp"
)

const defaultModel = "gemini-2.5-flash"

var _ nlp.ContentGenerator = (*Generator)(nil)

// Generator envuelve el cliente de Google GenAI para interacciones simples
// de prompt/respuesta.
type Generator struct {
	client    *genai.Client
	modelName string
}

// NewGenerator crea el generador contra el backend de la Gemini API.
func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("se requiere api key de gemini")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente genai: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Generator{client: client, modelName: model}, nil
}

// GenerateContent envía el prompt y devuelve el texto concatenado de los
// candidatos.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt vacío")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generar contenido: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("la api de gemini devolvió una respuesta vacía")
	}
	return output, nil
}

// Model nombre del modelo configurado.
func (g *Generator) Model() string {
	return g.modelName
}
