package repository

import "github.com/jhoicas/smarthr-api/internal/domain/entity"

// LeaveRepository puerto de consulta de licencias (solo lectura).
type LeaveRepository interface {
	// Balance saldo de licencias del empleado, nil si no tiene.
	Balance(empID string) (*entity.LeaveBalance, error)
	// LastRequest última solicitud del empleado, opcionalmente filtrada por
	// tipo (annual/sick/casual); nil si no hay ninguna.
	LastRequest(empID, leaveType string) (*entity.LeaveRequest, error)
	// CountRequests total de solicitudes, opcionalmente por estado
	// (Pending/Approved/Rejected, case-insensitive).
	CountRequests(status string) (int64, error)
}
