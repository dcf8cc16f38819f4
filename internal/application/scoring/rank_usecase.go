package scoring

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

const defaultRankLimit = 200

var errProbCountMismatch = errors.New("cantidad de probabilidades no coincide con las filas enviadas")

// RankUseCase rankings de turnover y performance sobre la colección de
// insights. Puntúa todos los documentos en un solo batch y completa los
// nombres faltantes desde la colección de empleados.
type RankUseCase struct {
	scorer       ModelScorer
	insightRepo  repository.InsightRepository
	employeeRepo repository.EmployeeRepository
	turnoverThr  float64
	perfThr      float64
	logger       zerolog.Logger
}

// NewRankUseCase construye el caso de uso de rankings.
func NewRankUseCase(
	scorer ModelScorer,
	insightRepo repository.InsightRepository,
	employeeRepo repository.EmployeeRepository,
	turnoverThr, perfThr float64,
	logger zerolog.Logger,
) *RankUseCase {
	return &RankUseCase{
		scorer:       scorer,
		insightRepo:  insightRepo,
		employeeRepo: employeeRepo,
		turnoverThr:  turnoverThr,
		perfThr:      perfThr,
		logger:       logger.With().Str("component", "rank_scoring").Logger(),
	}
}

// TurnoverRank ranking de riesgo de rotación, mayor probabilidad primero.
func (uc *RankUseCase) TurnoverRank(ctx context.Context, limit int) (*dto.RankResponse, error) {
	return uc.rank(ctx, ModelTurnover, PosthireFeatures, uc.turnoverThr, limit, true)
}

// PerformanceRank ranking de alto desempeño, mayor probabilidad primero.
func (uc *RankUseCase) PerformanceRank(ctx context.Context, limit int) (*dto.RankResponse, error) {
	return uc.rank(ctx, ModelPerformance, PerformanceFeatures, uc.perfThr, limit, false)
}

func (uc *RankUseCase) rank(ctx context.Context, model string, features []string, threshold float64, limit int, asRisk bool) (*dto.RankResponse, error) {
	if limit <= 0 {
		limit = defaultRankLimit
	}

	insights, err := uc.insightRepo.ListAll()
	if err != nil {
		return nil, err
	}
	if len(insights) == 0 {
		return &dto.RankResponse{Results: []dto.RankedEmployee{}}, nil
	}

	rows := make([]map[string]any, len(insights))
	for i, ins := range insights {
		rows[i] = ExtractFeatures(ins.Features, features)
	}

	probs, version, err := uc.scorer.Score(ctx, model, rows)
	if err != nil {
		return nil, err
	}
	if len(probs) != len(rows) {
		uc.logger.Error().
			Int("rows", len(rows)).
			Int("probs", len(probs)).
			Str("model", model).
			Msg("El scorer devolvió una cantidad inconsistente de probabilidades")
		return nil, errProbCountMismatch
	}

	results := make([]dto.RankedEmployee, len(insights))
	var missingNames []string
	for i, ins := range insights {
		flag := "Low"
		if probs[i] >= threshold {
			flag = "High"
		}
		results[i] = dto.RankedEmployee{
			EmpID:       ins.EmpID,
			FullName:    ins.FullName,
			Department:  ins.Department,
			JobRole:     ins.JobRole,
			Probability: round6(probs[i]),
		}
		if asRisk {
			results[i].RiskFlag = flag
		} else {
			results[i].Label = flag
		}
		if results[i].FullName == "" && results[i].EmpID != "" {
			missingNames = append(missingNames, results[i].EmpID)
		}
	}

	// La colección de insights suele no traer nombres: se completan desde
	// employees, solo donde faltan.
	if len(missingNames) > 0 {
		names, err := uc.employeeRepo.FullNamesByCodes(missingNames)
		if err != nil {
			return nil, err
		}
		for i := range results {
			if results[i].FullName == "" {
				results[i].FullName = names[results[i].EmpID]
			}
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Probability > results[b].Probability
	})
	if len(results) > limit {
		results = results[:limit]
	}

	return &dto.RankResponse{
		Count:        len(results),
		ModelVersion: version,
		Results:      results,
	}, nil
}

func round6(f float64) float64 {
	return math.Round(f*1e6) / 1e6
}
