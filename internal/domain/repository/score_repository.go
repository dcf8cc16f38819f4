package repository

import "github.com/jhoicas/smarthr-api/internal/domain/entity"

// ScoreRepository persistencia de predicciones pre-hire.
type ScoreRepository interface {
	Create(score *entity.CandidateScore) error
}
