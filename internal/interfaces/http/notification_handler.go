package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

// NotificationHandler expone las notificaciones de tardanza.
// HR ve todas; un empleado solo las suyas.
type NotificationHandler struct {
	repo repository.NotificationRepository
}

// NewNotificationHandler construye el handler de notificaciones.
func NewNotificationHandler(repo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

// List godoc
// @Summary      Listar notificaciones
// @Tags         notifications
// @Produce      json
// @Param        empId  query  string  false  "filtrar por empleado (solo HR; un empleado siempre ve las suyas)"
// @Param        limit  query  int     false  "máximo de filas (default 50)"
// @Success      200   {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	var (
		items   []*entity.Notification
		listErr error
	)
	if GetAccountType(c) == "hr" {
		if empID := c.Query("empId"); empID != "" {
			items, listErr = h.repo.ListByEmpID(empID, limit)
		} else {
			items, listErr = h.repo.ListAll(limit)
		}
	} else {
		items, listErr = h.repo.ListByEmpID(GetEmpID(c), limit)
	}
	if listErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: listErr.Error()})
	}

	out := make([]dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			To:        n.To,
			Type:      n.Type,
			EmpID:     n.EmpID,
			Reason:    n.Reason,
			Date:      n.Date.UTC().Format("2006-01-02"),
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
			Streak:    n.Streak,
		})
	}
	return c.JSON(out)
}
