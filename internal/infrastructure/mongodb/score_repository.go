package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

var _ repository.ScoreRepository = (*ScoreRepo)(nil)

// ScoreRepo persistencia de predicciones pre-hire para auditoría.
type ScoreRepo struct {
	col *mongo.Collection
}

// NewScoreRepository construye el adaptador de predicciones.
func NewScoreRepository(db *mongo.Database) *ScoreRepo {
	return &ScoreRepo{col: db.Collection(colScores)}
}

// Create inserta la predicción.
func (r *ScoreRepo) Create(score *entity.CandidateScore) error {
	doc := bson.M{
		"_id":            score.ID,
		"candidate_id":   score.CandidateID,
		"candidate_name": score.CandidateName,
		"candidate":      score.Candidate,
		"probability":    score.Probability,
		"risk_flag":      score.RiskFlag,
		"threshold":      score.Threshold,
		"model_version":  score.ModelVersion,
		"created_at":     score.CreatedAt.UTC(),
	}
	if _, err := r.col.InsertOne(context.Background(), doc); err != nil {
		return fmt.Errorf("guardar predicción de %s: %w", score.CandidateID, err)
	}
	return nil
}
