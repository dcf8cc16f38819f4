package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tags(plan []attempt) []string {
	out := make([]string, len(plan))
	for i, a := range plan {
		out[i] = a.tag
	}
	return out
}

func TestAttemptPlan_DimensionesNormales(t *testing.T) {
	plan := attemptPlan(1280, 720)
	assert.Equal(t, []string{"orig", "rot90", "rot270"}, tags(plan))
	assert.Zero(t, plan[0].width, "la original no se reescala")
	assert.Equal(t, rotCW, plan[1].rotation)
	assert.Equal(t, rotCCW, plan[2].rotation)
}

func TestAttemptPlan_ImagenChicaSeSube(t *testing.T) {
	plan := attemptPlan(400, 300)
	require.Equal(t, []string{"orig", "up", "rot90", "rot270"}, tags(plan))

	// Lado menor 300 -> factor 640/300; se trunca como int().
	up := plan[1]
	assert.Equal(t, 853, up.width)
	assert.Equal(t, 640, up.height)
	assert.Equal(t, rotNone, up.rotation)
}

func TestAttemptPlan_ImagenEnormeSeBaja(t *testing.T) {
	plan := attemptPlan(4000, 3000)
	require.Equal(t, []string{"orig", "down", "rot90", "rot270"}, tags(plan))

	down := plan[1]
	assert.Equal(t, 1200, down.width)
	assert.Equal(t, 900, down.height)
}

// Una imagen angosta y larga puede necesitar ambos reescalados.
func TestAttemptPlan_ChicaYEnormeALaVez(t *testing.T) {
	plan := attemptPlan(300, 2000)
	assert.Equal(t, []string{"orig", "up", "down", "rot90", "rot270"}, tags(plan))
}

func TestAttemptPlan_BordesExactosNoReescalan(t *testing.T) {
	plan := attemptPlan(480, 1600)
	assert.Equal(t, []string{"orig", "rot90", "rot270"}, tags(plan))
}
