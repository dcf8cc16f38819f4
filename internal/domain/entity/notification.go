package entity

import "time"

// Tipos de notificación de tardanza.
const (
	NotificationEmployee = "employee"
	NotificationHR       = "hr"
)

// Razones emitidas por el batch de tardanzas en los hitos de racha.
const (
	ReasonLate3Days = "Late for 3 continuous days"
	ReasonLate5Days = "Late for 5 continuous days"
)

// Notification aviso generado por el scanner de tardanzas.
// La tupla (Type, EmpID, Date, Reason) es única: a lo sumo una notificación
// por empleado, por razón y por día. Inmutable después de creada.
type Notification struct {
	ID        string
	To        string // empID destinatario, o "HR"
	Type      string // employee | hr
	EmpID     string // empleado al que refiere la notificación
	Reason    string
	Date      time.Time // medianoche local del día evaluado, en UTC
	CreatedAt time.Time
	Streak    int
}
