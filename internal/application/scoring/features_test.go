package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/smarthr-api/internal/application/scoring"
)

func TestCoerceOverTime(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"Yes", "Yes"},
		{"No", "No"},
		{"yes", "Yes"},
		{" y ", "Yes"},
		{"TRUE", "Yes"},
		{"1", "Yes"},
		{"no", "No"},
		{"0", "No"},
		{"", "No"},
		{true, "Yes"},
		{false, "No"},
		{1, "Yes"},
		{0, "No"},
		{float64(1), "Yes"},
		{float64(0), "No"},
		{nil, "No"},
		{"whatever", "No"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, scoring.CoerceOverTime(tc.in), "entrada %v", tc.in)
	}
}

func TestExtractFeatures(t *testing.T) {
	src := map[string]any{
		"JobInvolvement": 3,
		"JobLevel":       2,
		"OverTime":       true,
		"MonthlyIncome":  5300.0,
		"Department":     "Sales",
		"ExtraField":     "ignorado",
	}

	out := scoring.ExtractFeatures(src, scoring.PosthireFeatures)
	assert.Len(t, out, len(scoring.PosthireFeatures))
	assert.Equal(t, 3, out["JobInvolvement"])
	assert.Equal(t, "Yes", out["OverTime"], "bool coerciona a Yes/No")
	assert.Nil(t, out["YearsAtCompany"], "feature ausente queda en nil")
	assert.NotContains(t, out, "ExtraField")
	assert.NotContains(t, out, "Department", "Department no es feature post-hire")

	perf := scoring.ExtractFeatures(src, scoring.PerformanceFeatures)
	assert.Equal(t, "Sales", perf["Department"], "el modelo de performance sí usa las categóricas")
}
