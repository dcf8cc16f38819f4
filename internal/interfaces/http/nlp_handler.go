package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/application/nlp"
)

// NLPHandler maneja el asistente de consultas en lenguaje natural.
type NLPHandler struct {
	executor *nlp.Executor
}

// NewNLPHandler construye el handler NLP.
func NewNLPHandler(executor *nlp.Executor) *NLPHandler {
	return &NLPHandler{executor: executor}
}

// Query godoc
// @Summary      Consulta en lenguaje natural (políticas, vacaciones, directorio)
// @Description  Acepta la pregunta en el body JSON (POST) o en ?q= (GET).
// @Tags         nlp
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NLPQueryRequest  false  "q"
// @Param        q     query string               false  "pregunta"
// @Success      200   {object}  dto.NLPQueryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/nlp/query [post]
func (h *NLPHandler) Query(c *fiber.Ctx) error {
	var in dto.NLPQueryRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if in.Q == "" {
		in.Q = c.Query("q")
	}
	if strings.TrimSpace(in.Q) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q es requerido"})
	}
	out, err := h.executor.Execute(c.Context(), in.Q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
