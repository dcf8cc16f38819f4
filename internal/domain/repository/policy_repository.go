package repository

import "github.com/jhoicas/smarthr-api/internal/domain/entity"

// PolicyRepository puerto de consulta de políticas (solo lectura).
type PolicyRepository interface {
	// SearchTop búsqueda de texto; devuelve el documento más relevante o nil.
	SearchTop(topic string) (*entity.Policy, error)
	// List lista políticas: por relevancia si topic != "", alfabética si no.
	List(topic string, limit int) ([]*entity.Policy, error)
	// Count cuenta políticas que matchean topic, o el total si topic == "".
	Count(topic string) (int64, error)
}
