package attendance_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smarthr-api/internal/application/attendance"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/face"
)

func unitEmbedding(hot int) face.Embedding {
	v := make(face.Embedding, face.EmbeddingDim)
	v[hot] = 1
	return v
}

func TestKnownCache_CargaOrdenadaYOmiteMalformados(t *testing.T) {
	repo := newFakeEmployeeRepo(
		&entity.Employee{EmpID: "E020", Embedding: unitEmbedding(2)},
		&entity.Employee{EmpID: "E005", Embedding: unitEmbedding(0)},
		&entity.Employee{EmpID: "E010", Embedding: unitEmbedding(1)},
		&entity.Employee{EmpID: "E099", Embedding: []float32{1, 2, 3}}, // dimensión inválida
		&entity.Employee{EmpID: "E100"},                                // sin enrolar
	)
	cache := attendance.NewKnownCache(repo, zerolog.Nop())

	codes, embs, err := cache.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{"E005", "E010", "E020"}, codes, "ordenados ascendente, sin malformados")
	require.Len(t, embs, 3)
	for i, e := range embs {
		assert.Len(t, e, face.EmbeddingDim)
		assert.InDelta(t, 1.0, face.Cosine(e, e), 1e-6, "embedding %d normalizado", i)
	}
}

func TestKnownCache_NoRecargaPorLectura(t *testing.T) {
	repo := newFakeEmployeeRepo(&entity.Employee{EmpID: "E001", Embedding: unitEmbedding(0)})
	cache := attendance.NewKnownCache(repo, zerolog.Nop())

	for i := 0; i < 3; i++ {
		_, _, err := cache.Snapshot()
		require.NoError(t, err)
	}
	assert.Equal(t, 1, repo.listCalls, "una sola carga para lecturas repetidas")
}

func TestKnownCache_InvalidateFuerzaRecarga(t *testing.T) {
	repo := newFakeEmployeeRepo(&entity.Employee{EmpID: "E001", Embedding: unitEmbedding(0)})
	cache := attendance.NewKnownCache(repo, zerolog.Nop())

	codes, _, err := cache.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{"E001"}, codes)

	require.NoError(t, repo.UpsertEmbedding("E002", unitEmbedding(1)))
	cache.Invalidate()

	codes, _, err = cache.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{"E001", "E002"}, codes)
	assert.Equal(t, 2, repo.listCalls)
}
