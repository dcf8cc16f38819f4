package entity

import "time"

// Tipos de licencia soportados.
const (
	LeaveAnnual = "annual"
	LeaveSick   = "sick"
	LeaveCasual = "casual"
)

// LeaveBalance saldo de días de licencia de un empleado.
type LeaveBalance struct {
	EmpID     string
	Annual    int
	Sick      int
	Casual    int
	UpdatedAt time.Time
}

// LeaveRequest solicitud de licencia.
type LeaveRequest struct {
	EmpID     string
	Type      string // annual | sick | casual
	Status    string // Pending | Approved | Rejected
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}
