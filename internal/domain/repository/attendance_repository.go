package repository

import (
	"time"

	"github.com/jhoicas/smarthr-api/internal/domain/entity"
)

// AttendanceRepository puerto de persistencia de registros de asistencia.
//
// Las escrituras de check-in/check-out son condicionales de ganador único:
// fijan el campo solo si está ausente y reportan si esta llamada lo fijó.
// Así dos scans concurrentes del mismo (empleado, fecha) no pueden pisarse.
type AttendanceRepository interface {
	// Get devuelve el registro de (code, fecha local), nil si no existe.
	Get(code, date string) (*entity.AttendanceRecord, error)
	// CreateFirstScan upsert con semántica set-on-insert: si ya existe un
	// registro para (code, date) no modifica in/out. Devuelve true si esta
	// llamada insertó el documento.
	CreateFirstScan(rec *entity.AttendanceRecord) (bool, error)
	// SetCheckIn fija InTime solo si está ausente; true si esta llamada ganó.
	// Siempre actualiza LastConfidence.
	SetCheckIn(code, date string, t time.Time, confidence float64) (bool, error)
	// SetCheckOut análogo para OutTime.
	SetCheckOut(code, date string, t time.Time, confidence float64) (bool, error)
	// TouchConfidence actualiza solo LastConfidence (scans duplicados).
	TouchConfidence(code, date string, confidence float64) error
	// CodesForDate códigos de empleado con algún registro en la fecha.
	CodesForDate(date string) ([]string, error)
	// SetLateness persiste el flag de tardanza y la racha del día.
	SetLateness(code, date string, isLate bool, streak int) error
	// ListRange registros de un empleado con fecha en [from, to] (YYYY-MM-DD).
	ListRange(code, from, to string) ([]*entity.AttendanceRecord, error)
}
