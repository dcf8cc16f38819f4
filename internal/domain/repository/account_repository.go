package repository

import "github.com/jhoicas/smarthr-api/internal/domain/entity"

// AccountRepository puerto de persistencia de cuentas.
type AccountRepository interface {
	// FindActiveByEmpID devuelve la cuenta activa del empleado, nil si no hay.
	FindActiveByEmpID(empID string) (*entity.Account, error)
}
