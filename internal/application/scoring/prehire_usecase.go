package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/domain"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

// PrehireUseCase evalúa el riesgo de attrition de un candidato antes de la
// contratación y persiste la predicción para auditoría.
type PrehireUseCase struct {
	scorer    ModelScorer
	scoreRepo repository.ScoreRepository
	threshold float64
	logger    zerolog.Logger
}

// NewPrehireUseCase construye el caso de uso pre-hire.
func NewPrehireUseCase(scorer ModelScorer, scoreRepo repository.ScoreRepository, threshold float64, logger zerolog.Logger) *PrehireUseCase {
	return &PrehireUseCase{
		scorer:    scorer,
		scoreRepo: scoreRepo,
		threshold: threshold,
		logger:    logger.With().Str("component", "prehire_scoring").Logger(),
	}
}

// Predict puntúa al candidato. El fallo al persistir no tumba la
// predicción: se reporta saved=false y el resultado igual se devuelve.
func (uc *PrehireUseCase) Predict(ctx context.Context, in dto.PrehireRequest) (*dto.PrehireResponse, error) {
	if err := validatePrehire(in); err != nil {
		return nil, err
	}

	features := map[string]any{
		"Age":                   in.Age,
		"Gender":                in.Gender,
		"BusinessTravel":        in.BusinessTravel,
		"Department":            in.Department,
		"Education":             in.Education,
		"EducationField":        in.EducationField,
		"JobRole":               in.JobRole,
		"MaritalStatus":         in.MaritalStatus,
		"DistanceFromHome":      in.DistanceFromHome,
		"TotalWorkingYears":     in.TotalWorkingYears,
		"NumCompaniesWorked":    in.NumCompaniesWorked,
		"StockOptionLevel":      in.StockOptionLevel,
		"TrainingTimesLastYear": in.TrainingTimesLastYear,
	}

	probs, version, err := uc.scorer.Score(ctx, ModelPrehire, []map[string]any{features})
	if err != nil {
		return nil, err
	}
	if len(probs) != 1 {
		return nil, fmt.Errorf("el scorer devolvió %d probabilidades para 1 fila", len(probs))
	}
	prob := probs[0]

	riskFlag := "Low"
	if prob >= uc.threshold {
		riskFlag = "High"
	}

	score := &entity.CandidateScore{
		ID:            uuid.NewString(),
		CandidateID:   in.CandidateID,
		CandidateName: in.CandidateName,
		Candidate:     features,
		Probability:   prob,
		RiskFlag:      riskFlag,
		Threshold:     uc.threshold,
		ModelVersion:  version,
		CreatedAt:     time.Now().UTC(),
	}

	saved := true
	if err := uc.scoreRepo.Create(score); err != nil {
		saved = false
		uc.logger.Warn().Err(err).Str("candidate_id", in.CandidateID).Msg("No se pudo persistir la predicción")
	}

	uc.logger.Info().
		Str("candidate_id", in.CandidateID).
		Float64("probability", prob).
		Str("risk_flag", riskFlag).
		Msg("Candidato evaluado")

	return &dto.PrehireResponse{
		ID:            score.ID,
		Probability:   round4(prob),
		RiskFlag:      riskFlag,
		Threshold:     uc.threshold,
		ModelVersion:  version,
		Saved:         saved,
		CandidateID:   in.CandidateID,
		CandidateName: in.CandidateName,
	}, nil
}

func validatePrehire(in dto.PrehireRequest) error {
	if strings.TrimSpace(in.CandidateID) == "" {
		return fmt.Errorf("%w: CandidateID requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.CandidateName) == "" {
		return fmt.Errorf("%w: CandidateName requerido", domain.ErrInvalidInput)
	}
	if in.Age < 16 || in.Age > 80 {
		return fmt.Errorf("%w: Age fuera de rango", domain.ErrInvalidInput)
	}
	for field, v := range map[string]string{
		"Gender":         in.Gender,
		"BusinessTravel": in.BusinessTravel,
		"Department":     in.Department,
		"EducationField": in.EducationField,
		"JobRole":        in.JobRole,
		"MaritalStatus":  in.MaritalStatus,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s requerido", domain.ErrInvalidInput, field)
		}
	}
	for field, v := range map[string]int{
		"Education":             in.Education,
		"DistanceFromHome":      in.DistanceFromHome,
		"TotalWorkingYears":     in.TotalWorkingYears,
		"NumCompaniesWorked":    in.NumCompaniesWorked,
		"StockOptionLevel":      in.StockOptionLevel,
		"TrainingTimesLastYear": in.TrainingTimesLastYear,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, field)
		}
	}
	return nil
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
