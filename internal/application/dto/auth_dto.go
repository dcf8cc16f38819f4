package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	EmpID    string `json:"emp_id"`
	Password string `json:"password"`
}

// SessionUser datos de sesión expuestos al cliente (nunca el hash).
type SessionUser struct {
	EmpID       string `json:"emp_id"`
	AccountType string `json:"account_type"`
	Status      string `json:"status,omitempty"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
