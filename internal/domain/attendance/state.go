// Package attendance contiene las reglas puras del módulo de asistencia:
// la máquina de estados IN/OUT por (empleado, fecha) y las reglas de
// tardanza y rachas. Sin dependencias de persistencia.
package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/smarthr-api/internal/domain/entity"
)

// ClockTime hora del día local (HH:MM) para cortes de negocio.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parsea "HH:MM".
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("hora inválida %q: se espera HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, fmt.Errorf("hora inválida %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("hora inválida %q", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// Minutes minutos transcurridos desde medianoche.
func (c ClockTime) Minutes() int { return c.Hour*60 + c.Minute }

// On ancla la hora del día a la fecha de t (misma zona horaria).
func (c ClockTime) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

// IsOutWindow indica si un scan en el instante local now cae en la ventana
// de salida: estrictamente después del corte. No hay acción explícita de
// entrada/salida del usuario; este corte es la única señal.
func IsOutWindow(now time.Time, cutoff ClockTime) bool {
	return now.After(cutoff.On(now))
}

// Decide aplica la máquina de estados sobre el registro existente (nil si no
// hay registro para el día) y devuelve el tipo de evento. No muta el
// registro: la escritura condicional la hace el repositorio, y solo el
// ganador de esa escritura reporta IN/OUT.
func Decide(existing *entity.AttendanceRecord, isOut bool) string {
	if existing == nil {
		if isOut {
			return entity.EventOut
		}
		return entity.EventIn
	}
	if isOut {
		if existing.OutTime != nil {
			return entity.EventOutDuplicate
		}
		return entity.EventOut
	}
	if existing.InTime != nil {
		return entity.EventInDuplicate
	}
	return entity.EventIn
}
