package attendance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smarthr-api/internal/domain/attendance"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
)

var (
	lateStart  = attendance.ClockTime{Hour: 9, Minute: 10}
	lateCutoff = attendance.ClockTime{Hour: 12, Minute: 0}
)

func recWithIn(day time.Time, hour, minute int) *entity.AttendanceRecord {
	in := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, colombo)
	return &entity.AttendanceRecord{
		EmployeeCode: "E005",
		Date:         day.Format(attendance.DateLayout),
		InTime:       &in,
	}
}

func TestIsWorkday(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, colombo)
	assert.True(t, attendance.IsWorkday(monday))
	assert.True(t, attendance.IsWorkday(monday.AddDate(0, 0, 4)), "viernes")
	assert.False(t, attendance.IsWorkday(monday.AddDate(0, 0, 5)), "sábado")
	assert.False(t, attendance.IsWorkday(monday.AddDate(0, 0, 6)), "domingo")
}

func TestPrevWorkday_SaltaFinDeSemana(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, colombo)
	prev := attendance.PrevWorkday(monday)
	assert.Equal(t, time.Friday, prev.Weekday(), "el anterior al lunes es el viernes")
	assert.Equal(t, "2025-03-07", prev.Format(attendance.DateLayout))
}

func TestIsLate_VentanaInclusiva(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, colombo)

	assert.False(t, attendance.IsLate(recWithIn(day, 9, 9), colombo, lateStart, lateCutoff), "09:09 a tiempo")
	assert.True(t, attendance.IsLate(recWithIn(day, 9, 10), colombo, lateStart, lateCutoff), "09:10 inclusive")
	assert.True(t, attendance.IsLate(recWithIn(day, 12, 0), colombo, lateStart, lateCutoff), "12:00 inclusive")
	assert.False(t, attendance.IsLate(recWithIn(day, 12, 1), colombo, lateStart, lateCutoff), "12:01 fuera de ventana")
	assert.False(t, attendance.IsLate(nil, colombo, lateStart, lateCutoff), "sin registro no hay tardanza")
	assert.False(t, attendance.IsLate(&entity.AttendanceRecord{}, colombo, lateStart, lateCutoff), "sin check-in no hay tardanza")
}

// Tardanza D-4..D (cinco laborables seguidos) y a tiempo antes: la racha en
// D-2 es 3 y en D es 5.
func TestStreak_CincoDiasConsecutivos(t *testing.T) {
	// D = viernes 2025-03-14; D-4 = lunes 10.
	d := time.Date(2025, 3, 14, 0, 0, 0, 0, colombo)
	late := map[string]*entity.AttendanceRecord{}
	for i := 0; i < 5; i++ {
		day := d.AddDate(0, 0, -i)
		late[day.Format(attendance.DateLayout)] = recWithIn(day, 9, 30)
	}
	// Viernes anterior (2025-03-07): a tiempo.
	onTimeDay := time.Date(2025, 3, 7, 0, 0, 0, 0, colombo)
	late[onTimeDay.Format(attendance.DateLayout)] = recWithIn(onTimeDay, 8, 45)

	lookup := func(code, date string) (*entity.AttendanceRecord, error) {
		return late[date], nil
	}

	streak, err := attendance.Streak("E005", d.AddDate(0, 0, -2), colombo, lateStart, lateCutoff, lookup)
	require.NoError(t, err)
	assert.Equal(t, 3, streak, "en D-2 la racha es 3")

	streak, err = attendance.Streak("E005", d, colombo, lateStart, lateCutoff, lookup)
	require.NoError(t, err)
	assert.Equal(t, 5, streak, "en D la racha es 5")
}

// Un día sin registro corta la racha.
func TestStreak_DiaFaltanteCorta(t *testing.T) {
	d := time.Date(2025, 3, 12, 0, 0, 0, 0, colombo) // miércoles
	recs := map[string]*entity.AttendanceRecord{
		"2025-03-12": recWithIn(d, 9, 30),
		// martes 11 sin registro
		"2025-03-10": recWithIn(d.AddDate(0, 0, -2), 9, 30),
	}
	lookup := func(code, date string) (*entity.AttendanceRecord, error) {
		return recs[date], nil
	}

	streak, err := attendance.Streak("E005", d, colombo, lateStart, lateCutoff, lookup)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

// El lookback está acotado: una historia infinita de tardanzas no cuelga el
// cálculo ni pasa de 11 (hoy + 10 días hacia atrás).
func TestStreak_LookbackAcotado(t *testing.T) {
	d := time.Date(2025, 3, 14, 0, 0, 0, 0, colombo)
	lookup := func(code, date string) (*entity.AttendanceRecord, error) {
		day, _ := time.ParseInLocation(attendance.DateLayout, date, colombo)
		return recWithIn(day, 10, 0), nil
	}

	streak, err := attendance.Streak("E005", d, colombo, lateStart, lateCutoff, lookup)
	require.NoError(t, err)
	assert.Equal(t, 11, streak)
}
