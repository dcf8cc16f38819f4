package scoring

import "context"

// ModelScorer puerto hacia el servicio de modelos. Cada fila es el mapa de
// features de un sujeto; la respuesta trae una probabilidad por fila en el
// mismo orden, más la versión del artefacto de modelo que la produjo.
type ModelScorer interface {
	Score(ctx context.Context, model string, rows []map[string]any) ([]float64, string, error)
}

// Modelos publicados por el servicio de scoring.
const (
	ModelPrehire     = "prehire"
	ModelTurnover    = "turnover"
	ModelPerformance = "performance"
)
