package http

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	appattendance "github.com/jhoicas/smarthr-api/internal/application/attendance"
	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/domain"
)

// AttendanceHandler maneja el kiosco de asistencia, el enrolamiento y los
// reportes.
type AttendanceHandler struct {
	scanUC     *appattendance.ScanUseCase
	enrollUC   *appattendance.EnrollUseCase
	latenessUC *appattendance.LatenessUseCase
	reportUC   *appattendance.ReportUseCase
}

// NewAttendanceHandler construye el handler de asistencia.
func NewAttendanceHandler(
	scanUC *appattendance.ScanUseCase,
	enrollUC *appattendance.EnrollUseCase,
	latenessUC *appattendance.LatenessUseCase,
	reportUC *appattendance.ReportUseCase,
) *AttendanceHandler {
	return &AttendanceHandler{
		scanUC:     scanUC,
		enrollUC:   enrollUC,
		latenessUC: latenessUC,
		reportUC:   reportUC,
	}
}

// Scan godoc
// @Summary      Scan de asistencia por rostro
// @Description  Los fallos de reconocimiento (imagen mala, sin cara, baja
// @Description  confianza) responden HTTP 200 con ok:false; el kiosco decide
// @Description  por payload, no por status.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "imageBase64"
// @Success      200   {object}  dto.ScanResponse
// @Router       /api/attendance/scan [post]
func (h *AttendanceHandler) Scan(c *fiber.Ctx) error {
	image, softFail := decodeImageBody(c)
	if softFail != nil {
		return c.JSON(dto.ScanResponse{
			OK:      false,
			Message: "Invalid Entry",
			Reason:  *softFail,
		})
	}
	out, err := h.scanUC.Scan(image)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Enroll godoc
// @Summary      Enrolar el rostro de un empleado (HR)
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        code  path  string             true  "código de empleado"
// @Param        body  body  dto.EnrollRequest  true  "imageBase64"
// @Success      200   {object}  dto.EnrollResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/attendance/enroll/{code} [post]
func (h *AttendanceHandler) Enroll(c *fiber.Ctx) error {
	code := c.Params("code")
	image, softFail := decodeImageBody(c)
	if softFail != nil {
		return c.JSON(dto.EnrollResponse{
			OK:      false,
			Message: "Invalid Entry",
			Reason:  *softFail,
		})
	}
	out, err := h.enrollUC.Enroll(code, image)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LatenessScan godoc
// @Summary      Ejecutar el batch de tardanzas (HR)
// @Description  date opcional (YYYY-MM-DD); por defecto evalúa el día de ayer.
// @Tags         attendance
// @Produce      json
// @Param        date  query  string  false  "fecha local YYYY-MM-DD"
// @Success      200   {object}  dto.LatenessScanResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/attendance/lateness-scan [post]
func (h *AttendanceHandler) LatenessScan(c *fiber.Ctx) error {
	out, err := h.latenessUC.ScanDate(c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MonthlyReport godoc
// @Summary      Reporte mensual de asistencia en PDF
// @Description  Un empleado solo puede descargar su propio reporte; HR
// @Description  cualquiera.
// @Tags         attendance
// @Produce      application/pdf
// @Param        employeeCode  query  string  true  "código de empleado"
// @Param        month         query  string  true  "mes YYYY-MM"
// @Success      200   {file}    binary
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/attendance/report [get]
func (h *AttendanceHandler) MonthlyReport(c *fiber.Ctx) error {
	code := c.Query("employeeCode")
	month := c.Query("month")
	if code == "" {
		code = GetEmpID(c)
	}
	if GetAccountType(c) != "hr" && GetEmpID(c) != code {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puedes descargar tu propio reporte"})
	}
	pdf, err := h.reportUC.MonthlyPDF(code, month)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="attendance_%s_%s.pdf"`, code, month))
	return c.Send(pdf)
}

// decodeImageBody parsea el body JSON y decodifica imageBase64. Devuelve la
// razón de fallo suave en lugar de un error HTTP: el contrato del kiosco es
// siempre 200.
func decodeImageBody(c *fiber.Ctx) ([]byte, *string) {
	reason := func(r string) *string { return &r }
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, reason("no_image")
	}
	if in.ImageBase64 == "" {
		return nil, reason("no_image")
	}
	image, err := base64.StdEncoding.DecodeString(in.ImageBase64)
	if err != nil {
		return nil, reason("bad_image")
	}
	return image, nil
}
