package entity

import "time"

// Tipos de evento que puede producir un scan de asistencia.
const (
	EventIn           = "IN"
	EventOut          = "OUT"
	EventInDuplicate  = "IN_DUPLICATE"
	EventOutDuplicate = "OUT_DUPLICATE"
)

// AttendanceRecord registro de asistencia por (empleado, fecha local).
// Invariante: a lo sumo un registro por par; InTime y OutTime, una vez
// fijados, no se sobrescriben.
type AttendanceRecord struct {
	EmployeeCode    string
	Date            string // fecha local YYYY-MM-DD
	InTime          *time.Time
	OutTime         *time.Time
	Method          string // "face"
	LastConfidence  float64
	IsLate          bool // derivado por el batch de tardanzas
	LateStreakToday int  // racha de tardanzas consecutivas que termina en Date
}
