package face

import "github.com/jhoicas/smarthr-api/internal/domain"

// Match resultado de comparar un probe contra las caras enroladas.
type Match struct {
	EmployeeCode string
	Confidence   float64
}

// BestMatch compara el probe contra cada embedding conocido y devuelve el
// mejor por similitud coseno. El empate se resuelve por índice menor: como
// la caché ordena los códigos ascendentemente, gana el código
// lexicográficamente menor (decisión registrada en DESIGN.md).
//
// Errores: ErrNoEnrolledFaces con caché vacía; ErrLowConfidence si el mejor
// queda por debajo del umbral (la confianza se devuelve igual para
// diagnóstico). El umbral es inclusivo: similitud == umbral es match.
func BestMatch(probe Embedding, codes []string, known []Embedding, threshold float64) (Match, error) {
	if len(known) == 0 {
		return Match{}, domain.ErrNoEnrolledFaces
	}

	bestIdx := 0
	bestSim := Cosine(probe, known[0])
	for i := 1; i < len(known); i++ {
		if sim := Cosine(probe, known[i]); sim > bestSim {
			bestSim = sim
			bestIdx = i
		}
	}

	m := Match{EmployeeCode: codes[bestIdx], Confidence: bestSim}
	if bestSim < threshold {
		return m, domain.ErrLowConfidence
	}
	return m, nil
}
