package entity

// Tipos de cuenta del sistema.
const (
	AccountHR       = "hr"
	AccountEmployee = "employee"
)

// Account credenciales de acceso de un empleado.
type Account struct {
	EmpID        string
	PasswordHash string // bcrypt; nunca se serializa hacia afuera
	AccountType  string // hr | employee
	Status       string // active | inactive
}
