package attendance

import (
	"time"

	"github.com/jhoicas/smarthr-api/internal/domain/entity"
)

// maxStreakLookback tope de días laborables hacia atrás al calcular la racha.
const maxStreakLookback = 10

// DateLayout formato de fecha local usado como clave de asistencia.
const DateLayout = "2006-01-02"

// IsWorkday lunes a viernes. Feriados no modelados (ver DESIGN.md).
func IsWorkday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// PrevWorkday día laborable inmediatamente anterior a d.
func PrevWorkday(d time.Time) time.Time {
	prev := d.AddDate(0, 0, -1)
	for !IsWorkday(prev) {
		prev = prev.AddDate(0, 0, -1)
	}
	return prev
}

// IsLate indica si el registro cuenta como tardanza: existe check-in y su
// hora local cae dentro de [lateStart, lateCutoff], ambos extremos
// inclusive.
func IsLate(rec *entity.AttendanceRecord, loc *time.Location, lateStart, lateCutoff ClockTime) bool {
	if rec == nil || rec.InTime == nil {
		return false
	}
	local := rec.InTime.In(loc)
	mins := local.Hour()*60 + local.Minute()
	return mins >= lateStart.Minutes() && mins <= lateCutoff.Minutes()
}

// RecordLookup obtiene el registro de asistencia de (empleado, fecha local),
// nil si no existe.
type RecordLookup func(code, date string) (*entity.AttendanceRecord, error)

// Streak calcula la racha de tardanzas consecutivas que termina en target
// (inclusive) para un empleado que ese día llegó tarde. Camina hacia atrás
// por días laborables, acotado a maxStreakLookback, y se detiene en el
// primer día sin tardanza o sin registro.
func Streak(code string, target time.Time, loc *time.Location, lateStart, lateCutoff ClockTime, lookup RecordLookup) (int, error) {
	streak := 1
	prev := PrevWorkday(target)
	for i := 0; i < maxStreakLookback; i++ {
		rec, err := lookup(code, prev.Format(DateLayout))
		if err != nil {
			return 0, err
		}
		if !IsLate(rec, loc, lateStart, lateCutoff) {
			break
		}
		streak++
		prev = PrevWorkday(prev)
	}
	return streak, nil
}
