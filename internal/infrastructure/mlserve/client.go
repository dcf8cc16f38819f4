// Package mlserve es el cliente HTTP del servicio de modelos predictivos.
// Los clasificadores (attrition pre-hire, turnover, performance) viven en
// un servicio aparte que los sirve tras un endpoint JSON; este adaptador
// implementa el puerto ModelScorer contra ese servicio.
package mlserve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/smarthr-api/internal/application/scoring"
)

var _ scoring.ModelScorer = (*Client)(nil)

// Client cliente del servicio de scoring.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL sin slash final, p.ej.
// http://scorer:9000.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type scoreRequest struct {
	Rows []map[string]any `json:"rows"`
}

type scoreResponse struct {
	Probabilities []float64 `json:"probabilities"`
	ModelVersion  string    `json:"model_version"`
	Error         string    `json:"error,omitempty"`
}

// Score envía las filas al modelo indicado y devuelve una probabilidad por
// fila más la versión del artefacto.
func (c *Client) Score(ctx context.Context, model string, rows []map[string]any) ([]float64, string, error) {
	if c.baseURL == "" {
		return nil, "", fmt.Errorf("mlserve: URL del servicio de scoring no configurada")
	}

	body, err := json.Marshal(scoreRequest{Rows: rows})
	if err != nil {
		return nil, "", fmt.Errorf("mlserve: serializar filas: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s/score", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("mlserve: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("mlserve: llamar al scorer: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, "", fmt.Errorf("mlserve: leer respuesta: %w", err)
	}

	var parsed scoreResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, "", fmt.Errorf("mlserve: respuesta inválida (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != "" {
			return nil, "", fmt.Errorf("mlserve: el scorer respondió %d: %s", resp.StatusCode, parsed.Error)
		}
		return nil, "", fmt.Errorf("mlserve: el scorer respondió %d", resp.StatusCode)
	}
	if len(parsed.Probabilities) != len(rows) {
		return nil, "", fmt.Errorf("mlserve: %d probabilidades para %d filas", len(parsed.Probabilities), len(rows))
	}
	return parsed.Probabilities, parsed.ModelVersion, nil
}
