package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	attrules "github.com/jhoicas/smarthr-api/internal/domain/attendance"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

// Hitos de racha que disparan notificaciones. Son de igualdad exacta: una
// racha de 4 no re-dispara el hito de 3 (decisión registrada en DESIGN.md).
const (
	streakNotifyEmployee = 3
	streakNotifyHR       = 5
)

// LatenessUseCase batch diario de tardanzas: marca los registros tardíos de
// una fecha, calcula rachas consecutivas y emite notificaciones en los
// hitos. Re-ejecutarlo sobre la misma fecha es idempotente: la inserción
// condicional de notificaciones absorbe los duplicados.
type LatenessUseCase struct {
	attendanceRepo   repository.AttendanceRepository
	notificationRepo repository.NotificationRepository
	lateStart        attrules.ClockTime
	lateCutoff       attrules.ClockTime
	location         *time.Location
	now              func() time.Time
	logger           zerolog.Logger
}

// NewLatenessUseCase construye el caso de uso del batch de tardanzas.
func NewLatenessUseCase(
	attendanceRepo repository.AttendanceRepository,
	notificationRepo repository.NotificationRepository,
	lateStart attrules.ClockTime,
	lateCutoff attrules.ClockTime,
	location *time.Location,
	logger zerolog.Logger,
) *LatenessUseCase {
	return &LatenessUseCase{
		attendanceRepo:   attendanceRepo,
		notificationRepo: notificationRepo,
		lateStart:        lateStart,
		lateCutoff:       lateCutoff,
		location:         location,
		now:              time.Now,
		logger:           logger.With().Str("component", "lateness_scan").Logger(),
	}
}

// WithClock reemplaza la fuente de tiempo. Pensado para tests.
func (uc *LatenessUseCase) WithClock(now func() time.Time) *LatenessUseCase {
	uc.now = now
	return uc
}

// ScanDate evalúa la fecha local dada (YYYY-MM-DD; vacío = ayer). Los fines
// de semana se saltan completos: no cuentan tardanza ni cortan rachas.
func (uc *LatenessUseCase) ScanDate(date string) (*dto.LatenessScanResult, error) {
	var day time.Time
	if date == "" {
		day = uc.now().In(uc.location).AddDate(0, 0, -1)
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, uc.location)
	} else {
		parsed, err := time.ParseInLocation(attrules.DateLayout, date, uc.location)
		if err != nil {
			return nil, err
		}
		day = parsed
	}

	result := &dto.LatenessScanResult{Date: day.Format(attrules.DateLayout)}
	if !attrules.IsWorkday(day) {
		result.Skipped = true
		uc.logger.Info().Str("date", result.Date).Msg("Fecha no laborable, batch omitido")
		return result, nil
	}

	codes, err := uc.attendanceRepo.CodesForDate(result.Date)
	if err != nil {
		return nil, err
	}
	result.EmployeesScanned = len(codes)

	for _, code := range codes {
		rec, err := uc.attendanceRepo.Get(code, result.Date)
		if err != nil {
			return nil, err
		}
		if !attrules.IsLate(rec, uc.location, uc.lateStart, uc.lateCutoff) {
			if err := uc.attendanceRepo.SetLateness(code, result.Date, false, 0); err != nil {
				return nil, err
			}
			continue
		}

		streak, err := attrules.Streak(code, day, uc.location, uc.lateStart, uc.lateCutoff, uc.attendanceRepo.Get)
		if err != nil {
			return nil, err
		}
		if err := uc.attendanceRepo.SetLateness(code, result.Date, true, streak); err != nil {
			return nil, err
		}

		switch streak {
		case streakNotifyEmployee:
			inserted, err := uc.notify(code, code, entity.NotificationEmployee, entity.ReasonLate3Days, day, streak)
			if err != nil {
				return nil, err
			}
			if inserted {
				result.EmployeeNotifications++
			}
		case streakNotifyHR:
			inserted, err := uc.notify(code, "HR", entity.NotificationHR, entity.ReasonLate5Days, day, streak)
			if err != nil {
				return nil, err
			}
			if inserted {
				result.HRNotifications++
			}
		}
	}

	uc.logger.Info().
		Str("date", result.Date).
		Int("scanned", result.EmployeesScanned).
		Int("employee_notifications", result.EmployeeNotifications).
		Int("hr_notifications", result.HRNotifications).
		Msg("Batch de tardanzas completado")
	return result, nil
}

func (uc *LatenessUseCase) notify(empID, to, notifType, reason string, day time.Time, streak int) (bool, error) {
	n := &entity.Notification{
		ID:        uuid.NewString(),
		To:        to,
		Type:      notifType,
		EmpID:     empID,
		Reason:    reason,
		Date:      time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt: uc.now().UTC(),
		Streak:    streak,
	}
	inserted, err := uc.notificationRepo.InsertIfAbsent(n)
	if err != nil {
		return false, err
	}
	if inserted {
		uc.logger.Info().
			Str("emp_id", empID).
			Str("type", notifType).
			Int("streak", streak).
			Msg("Notificación de tardanza creada")
	}
	return inserted, nil
}
