package dto

// NLPQueryRequest pregunta en lenguaje natural.
type NLPQueryRequest struct {
	Q string `json:"q"`
}

// NLPQueryResponse respuesta del ejecutor NLP: texto para el chat más
// metadatos opcionales (conteos, política fuente, solicitud, etc.).
type NLPQueryResponse struct {
	Text string         `json:"text"`
	Meta map[string]any `json:"meta,omitempty"`
}
