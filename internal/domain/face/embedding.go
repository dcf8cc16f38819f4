// Package face contiene la aritmética pura de embeddings faciales:
// normalización L2, similitud coseno y la selección del mejor match.
// No depende de OpenCV ni de la capa de persistencia.
package face

import "math"

// EmbeddingDim dimensión fija del vector que produce el reconocedor SFace.
const EmbeddingDim = 128

// normEpsilon evita la división por cero al normalizar un vector degenerado.
const normEpsilon = 1e-12

// Embedding vector de características de una identidad facial.
type Embedding = []float32

// Normalize devuelve v escalado a norma unitaria (v / (||v|| + eps)).
// Normalizar un vector ya normalizado es idempotente dentro de la
// tolerancia de float32.
func Normalize(v Embedding) Embedding {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum) + normEpsilon
	out := make(Embedding, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

// Cosine similitud coseno entre dos vectores. Para vectores unitarios
// equivale al producto punto; el llamador es responsable de normalizar.
func Cosine(a, b Embedding) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}
