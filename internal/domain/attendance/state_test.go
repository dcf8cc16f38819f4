package attendance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smarthr-api/internal/domain/attendance"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
)

var colombo = time.FixedZone("Asia/Colombo", int((5*time.Hour + 30*time.Minute).Seconds()))

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, colombo) // lunes
}

func ts(hour, minute int) *time.Time {
	t := at(hour, minute)
	return &t
}

func TestParseClockTime(t *testing.T) {
	c, err := attendance.ParseClockTime("12:01")
	require.NoError(t, err)
	assert.Equal(t, 12, c.Hour)
	assert.Equal(t, 1, c.Minute)

	_, err = attendance.ParseClockTime("25:00")
	assert.Error(t, err, "hora fuera de rango debe fallar")
	_, err = attendance.ParseClockTime("0901")
	assert.Error(t, err, "sin separador debe fallar")
}

func TestIsOutWindow(t *testing.T) {
	cutoff := attendance.ClockTime{Hour: 12, Minute: 1}

	assert.False(t, attendance.IsOutWindow(at(8, 50), cutoff), "08:50 es ventana IN")
	assert.False(t, attendance.IsOutWindow(at(12, 1), cutoff), "el corte exacto sigue siendo IN (estrictamente después)")
	assert.True(t, attendance.IsOutWindow(at(12, 2), cutoff), "12:02 es ventana OUT")
}

func TestDecide_SinRegistro(t *testing.T) {
	assert.Equal(t, entity.EventIn, attendance.Decide(nil, false))
	assert.Equal(t, entity.EventOut, attendance.Decide(nil, true))
}

func TestDecide_VentanaIn(t *testing.T) {
	rec := &entity.AttendanceRecord{EmployeeCode: "E005", Date: "2025-03-10"}

	// Sin check-in previo → IN; con check-in → duplicado.
	assert.Equal(t, entity.EventIn, attendance.Decide(rec, false))
	rec.InTime = ts(8, 50)
	assert.Equal(t, entity.EventInDuplicate, attendance.Decide(rec, false))
}

func TestDecide_VentanaOut(t *testing.T) {
	rec := &entity.AttendanceRecord{EmployeeCode: "E005", Date: "2025-03-10", InTime: ts(8, 50)}

	assert.Equal(t, entity.EventOut, attendance.Decide(rec, true))
	rec.OutTime = ts(17, 0)
	assert.Equal(t, entity.EventOutDuplicate, attendance.Decide(rec, true))
}

// Secuencia completa del día: IN, IN_DUPLICATE, OUT, OUT_DUPLICATE; los
// campos ya fijados nunca cambian de decisión.
func TestDecide_SecuenciaMonotona(t *testing.T) {
	rec := &entity.AttendanceRecord{EmployeeCode: "E005", Date: "2025-03-10"}

	require.Equal(t, entity.EventIn, attendance.Decide(rec, false))
	rec.InTime = ts(8, 50)

	for i := 0; i < 3; i++ {
		assert.Equal(t, entity.EventInDuplicate, attendance.Decide(rec, false))
	}

	require.Equal(t, entity.EventOut, attendance.Decide(rec, true))
	rec.OutTime = ts(17, 5)

	for i := 0; i < 3; i++ {
		assert.Equal(t, entity.EventOutDuplicate, attendance.Decide(rec, true))
	}
}
