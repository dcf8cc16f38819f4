package repository

import "github.com/jhoicas/smarthr-api/internal/domain/entity"

// NotificationRepository puerto de persistencia de notificaciones.
type NotificationRepository interface {
	// InsertIfAbsent inserta la notificación respetando la unicidad de
	// (Type, EmpID, Date, Reason). Devuelve true si insertó, false si ya
	// existía una equivalente. El duplicado no es un error: es el mecanismo
	// de idempotencia del batch de tardanzas.
	InsertIfAbsent(n *entity.Notification) (bool, error)
	// ListByEmpID notificaciones que refieren a un empleado, recientes primero.
	ListByEmpID(empID string, limit int) ([]*entity.Notification, error)
	// ListAll notificaciones de todos los empleados, recientes primero.
	ListAll(limit int) ([]*entity.Notification, error)
}
