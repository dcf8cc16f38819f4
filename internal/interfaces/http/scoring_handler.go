package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/application/scoring"
	"github.com/jhoicas/smarthr-api/internal/domain"
)

// ScoringHandler maneja los endpoints de predicción ML (HR).
type ScoringHandler struct {
	prehireUC *scoring.PrehireUseCase
	rankUC    *scoring.RankUseCase
}

// NewScoringHandler construye el handler de scoring.
func NewScoringHandler(prehireUC *scoring.PrehireUseCase, rankUC *scoring.RankUseCase) *ScoringHandler {
	return &ScoringHandler{prehireUC: prehireUC, rankUC: rankUC}
}

// Prehire godoc
// @Summary      Predicción de attrition pre-contratación
// @Tags         scoring
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PrehireRequest  true  "candidato + features del modelo"
// @Success      200   {object}  dto.PrehireResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/prehire/predict [post]
func (h *ScoringHandler) Prehire(c *fiber.Ctx) error {
	var in dto.PrehireRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.prehireUC.Predict(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TurnoverRank godoc
// @Summary      Ranking de riesgo de rotación de la plantilla actual
// @Tags         scoring
// @Produce      json
// @Param        limit  query  int  false  "máximo de filas (default 200)"
// @Success      200   {object}  dto.RankResponse
// @Router       /api/turnover/rank [get]
func (h *ScoringHandler) TurnoverRank(c *fiber.Ctx) error {
	out, err := h.rankUC.TurnoverRank(c.Context(), queryLimit(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PerformanceRank godoc
// @Summary      Ranking de desempeño proyectado de la plantilla actual
// @Tags         scoring
// @Produce      json
// @Param        limit  query  int  false  "máximo de filas (default 200)"
// @Success      200   {object}  dto.RankResponse
// @Router       /api/performance/rank [get]
func (h *ScoringHandler) PerformanceRank(c *fiber.Ctx) error {
	out, err := h.rankUC.PerformanceRank(c.Context(), queryLimit(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// queryLimit lee ?limit=; 0 delega el default al caso de uso.
func queryLimit(c *fiber.Ctx) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
