package scoring_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/application/scoring"
	"github.com/jhoicas/smarthr-api/internal/domain"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
)

type fakeScores struct {
	created []*entity.CandidateScore
	err     error
}

func (f *fakeScores) Create(score *entity.CandidateScore) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, score)
	return nil
}

func validPrehire() dto.PrehireRequest {
	return dto.PrehireRequest{
		CandidateID:           "C-301",
		CandidateName:         "Nimal Perera",
		Age:                   29,
		Gender:                "Male",
		BusinessTravel:        "Travel_Rarely",
		Department:            "Research & Development",
		Education:             3,
		EducationField:        "Life Sciences",
		JobRole:               "Research Scientist",
		MaritalStatus:         "Single",
		DistanceFromHome:      4,
		TotalWorkingYears:     6,
		NumCompaniesWorked:    2,
		StockOptionLevel:      1,
		TrainingTimesLastYear: 3,
	}
}

func TestPredict_RiesgoAlto(t *testing.T) {
	scorer := &fakeScorer{probs: []float64{0.71239}, version: "m1"}
	scores := &fakeScores{}
	uc := scoring.NewPrehireUseCase(scorer, scores, 0.45, zerolog.Nop())

	resp, err := uc.Predict(context.Background(), validPrehire())
	require.NoError(t, err)
	assert.Equal(t, scoring.ModelPrehire, scorer.model)
	assert.InDelta(t, 0.7124, resp.Probability, 1e-9, "probabilidad redondeada a 4 decimales")
	assert.Equal(t, "High", resp.RiskFlag)
	assert.Equal(t, "m1", resp.ModelVersion)
	assert.True(t, resp.Saved)
	assert.Equal(t, "C-301", resp.CandidateID)

	require.Len(t, scores.created, 1)
	assert.InDelta(t, 0.71239, scores.created[0].Probability, 1e-9, "se persiste sin redondear")
	assert.Equal(t, 29, scores.created[0].Candidate["Age"])
}

// El umbral es inclusivo hacia High.
func TestPredict_UmbralInclusivo(t *testing.T) {
	scorer := &fakeScorer{probs: []float64{0.45}, version: "m1"}
	uc := scoring.NewPrehireUseCase(scorer, &fakeScores{}, 0.45, zerolog.Nop())

	resp, err := uc.Predict(context.Background(), validPrehire())
	require.NoError(t, err)
	assert.Equal(t, "High", resp.RiskFlag)
}

// Fallo al persistir: la predicción se devuelve igual con saved=false.
func TestPredict_PersistenciaFallida(t *testing.T) {
	scorer := &fakeScorer{probs: []float64{0.2}, version: "m1"}
	uc := scoring.NewPrehireUseCase(scorer, &fakeScores{err: errors.New("mongo down")}, 0.45, zerolog.Nop())

	resp, err := uc.Predict(context.Background(), validPrehire())
	require.NoError(t, err)
	assert.False(t, resp.Saved)
	assert.Equal(t, "Low", resp.RiskFlag)
}

func TestPredict_Validacion(t *testing.T) {
	uc := scoring.NewPrehireUseCase(&fakeScorer{}, &fakeScores{}, 0.45, zerolog.Nop())

	in := validPrehire()
	in.CandidateID = ""
	_, err := uc.Predict(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validPrehire()
	in.Age = 12
	_, err = uc.Predict(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validPrehire()
	in.JobRole = "  "
	_, err = uc.Predict(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validPrehire()
	in.TotalWorkingYears = -1
	_, err = uc.Predict(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
