package attendance

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/smarthr-api/internal/domain"
	attrules "github.com/jhoicas/smarthr-api/internal/domain/attendance"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

// MonthlyReportData datos planos que consume el generador de PDF.
type MonthlyReportData struct {
	EmployeeCode string
	FullName     string
	Month        string // YYYY-MM
	Records      []*entity.AttendanceRecord
	DaysPresent  int
	DaysLate     int
	Location     *time.Location
}

// ReportUseCase arma el reporte mensual de asistencia de un empleado.
type ReportUseCase struct {
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
	generator      ReportGenerator
	location       *time.Location
	logger         zerolog.Logger
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	employeeRepo repository.EmployeeRepository,
	attendanceRepo repository.AttendanceRepository,
	generator ReportGenerator,
	location *time.Location,
	logger zerolog.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		generator:      generator,
		location:       location,
		logger:         logger.With().Str("component", "attendance_report").Logger(),
	}
}

// MonthlyPDF genera el PDF del mes (month en formato YYYY-MM) para un
// empleado.
func (uc *ReportUseCase) MonthlyPDF(code, month string) ([]byte, error) {
	first, err := time.ParseInLocation("2006-01", month, uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: mes inválido %q, se espera YYYY-MM", domain.ErrInvalidInput, month)
	}

	emp, err := uc.employeeRepo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, fmt.Errorf("%w: empleado %s", domain.ErrNotFound, code)
	}

	last := first.AddDate(0, 1, -1)
	records, err := uc.attendanceRepo.ListRange(
		code,
		first.Format(attrules.DateLayout),
		last.Format(attrules.DateLayout),
	)
	if err != nil {
		return nil, err
	}

	data := &MonthlyReportData{
		EmployeeCode: code,
		FullName:     emp.FullName,
		Month:        month,
		Records:      records,
		Location:     uc.location,
	}
	for _, rec := range records {
		if rec.InTime != nil || rec.OutTime != nil {
			data.DaysPresent++
		}
		if rec.IsLate {
			data.DaysLate++
		}
	}

	pdf, err := uc.generator.MonthlyReport(data)
	if err != nil {
		return nil, err
	}
	uc.logger.Info().
		Str("emp_id", code).
		Str("month", month).
		Int("records", len(records)).
		Msg("Reporte mensual generado")
	return pdf, nil
}
