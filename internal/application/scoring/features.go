// Package scoring expone los modelos predictivos de RRHH: riesgo de
// attrition pre-hire por candidato y rankings de turnover y performance
// sobre la colección de insights de empleados.
package scoring

import (
	"strings"
)

// PosthireFeatures features del modelo de turnover post-contratación.
var PosthireFeatures = []string{
	"JobInvolvement", "JobLevel", "JobSatisfaction", "EnvironmentSatisfaction",
	"RelationshipSatisfaction", "WorkLifeBalance", "YearsAtCompany",
	"YearsInCurrentRole", "YearsSinceLastPromotion", "YearsWithCurrManager",
	"OverTime", "MonthlyIncome", "PerformanceRating",
}

// PerformanceFeatures features del modelo de alto desempeño. Incluye las
// categóricas JobRole y Department.
var PerformanceFeatures = []string{
	"JobInvolvement", "JobLevel", "JobSatisfaction", "EnvironmentSatisfaction",
	"RelationshipSatisfaction", "WorkLifeBalance", "YearsAtCompany",
	"YearsInCurrentRole", "YearsSinceLastPromotion", "YearsWithCurrManager",
	"OverTime", "MonthlyIncome",
	"JobRole", "Department",
}

// CoerceOverTime normaliza las variantes históricas del campo OverTime
// (bool, número, y/n, vacío) a los literales "Yes"/"No" que espera el
// modelo.
func CoerceOverTime(v any) string {
	switch val := v.(type) {
	case string:
		if val == "Yes" || val == "No" {
			return val
		}
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "y", "yes", "true", "1":
			return "Yes"
		default:
			return "No"
		}
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case int:
		if val != 0 {
			return "Yes"
		}
		return "No"
	case float64:
		if val != 0 {
			return "Yes"
		}
		return "No"
	default:
		return "No"
	}
}

// ExtractFeatures proyecta el documento crudo a las features pedidas, en
// orden, con OverTime normalizado. Las features ausentes quedan en nil: el
// servicio de modelos las imputa.
func ExtractFeatures(src map[string]any, features []string) map[string]any {
	out := make(map[string]any, len(features))
	for _, k := range features {
		val := src[k]
		if k == "OverTime" {
			val = CoerceOverTime(val)
		}
		out[k] = val
	}
	return out
}
