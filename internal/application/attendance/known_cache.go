package attendance

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/smarthr-api/internal/domain/face"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

// KnownCache caché en memoria de los embeddings enrolados. El matcher lo
// consulta en cada scan; recargar desde Mongo por request sería un viaje de
// red por kiosco. Se invalida tras cada enrolamiento.
//
// Invariante: codes y embeddings son slices paralelos, ordenados por código
// ascendente. Ese orden hace determinista el desempate del matcher.
type KnownCache struct {
	mu         sync.RWMutex
	loaded     bool
	codes      []string
	embeddings []face.Embedding

	employeeRepo repository.EmployeeRepository
	logger       zerolog.Logger
}

// NewKnownCache construye la caché vacía; la primera lectura la puebla.
func NewKnownCache(employeeRepo repository.EmployeeRepository, logger zerolog.Logger) *KnownCache {
	return &KnownCache{
		employeeRepo: employeeRepo,
		logger:       logger.With().Str("component", "known_cache").Logger(),
	}
}

// Snapshot devuelve los slices paralelos (códigos, embeddings), cargando la
// caché si todavía no se pobló. Los slices devueltos no deben mutarse.
func (c *KnownCache) Snapshot() ([]string, []face.Embedding, error) {
	c.mu.RLock()
	if c.loaded {
		codes, embs := c.codes, c.embeddings
		c.mu.RUnlock()
		return codes, embs, nil
	}
	c.mu.RUnlock()
	return c.reload()
}

// Invalidate descarta la caché; el próximo Snapshot recarga desde la base.
func (c *KnownCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.codes = nil
	c.embeddings = nil
	c.mu.Unlock()
}

func (c *KnownCache) reload() ([]string, []face.Embedding, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.codes, c.embeddings, nil
	}

	employees, err := c.employeeRepo.ListEnrolled()
	if err != nil {
		return nil, nil, err
	}

	codes := make([]string, 0, len(employees))
	embeddings := make([]face.Embedding, 0, len(employees))
	skipped := 0
	for _, emp := range employees {
		if len(emp.Embedding) != face.EmbeddingDim {
			// Documento histórico con embedding malformado: se omite y se
			// deja rastro, nunca se aborta la recarga completa.
			skipped++
			c.logger.Warn().
				Str("emp_id", emp.EmpID).
				Int("dim", len(emp.Embedding)).
				Msg("Embedding con dimensión inválida, se omite")
			continue
		}
		codes = append(codes, emp.EmpID)
		embeddings = append(embeddings, face.Normalize(emp.Embedding))
	}

	idx := make([]int, len(codes))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return codes[idx[a]] < codes[idx[b]] })
	sortedCodes := make([]string, len(codes))
	sortedEmbs := make([]face.Embedding, len(codes))
	for i, j := range idx {
		sortedCodes[i] = codes[j]
		sortedEmbs[i] = embeddings[j]
	}

	c.codes = sortedCodes
	c.embeddings = sortedEmbs
	c.loaded = true

	c.logger.Info().
		Int("enrolled", len(sortedCodes)).
		Int("skipped", skipped).
		Msg("Caché de embeddings recargada")
	return c.codes, c.embeddings, nil
}
