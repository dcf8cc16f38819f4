package dto

// ScanRequest payload del kiosco de asistencia.
type ScanRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

// ScanResponse resultado de un scan. Los fallos de reconocimiento van con
// ok:false, Message "Invalid Entry" y Reason diagnóstico, siempre sobre
// HTTP 200: el kiosco distingue por payload, nunca por status.
type ScanResponse struct {
	OK           bool    `json:"ok"`
	Type         string  `json:"type,omitempty"` // IN | OUT | IN_DUPLICATE | OUT_DUPLICATE
	EmployeeCode string  `json:"employeeCode,omitempty"`
	Confidence   float64 `json:"confidence,omitempty"`
	Message      string  `json:"message,omitempty"`
	Reason       string  `json:"reason,omitempty"` // no_image | bad_image | no_face | no_enrolled_faces | low_confidence
}

// EnrollRequest payload de enrolamiento (foto del empleado).
type EnrollRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

// EnrollResponse resultado de enrolamiento.
type EnrollResponse struct {
	OK           bool   `json:"ok"`
	EmployeeCode string `json:"employeeCode,omitempty"`
	Message      string `json:"message,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// LatenessScanResult resumen de una pasada del batch de tardanzas.
type LatenessScanResult struct {
	Date                  string `json:"date"`
	EmployeesScanned      int    `json:"employeesScanned"`
	EmployeeNotifications int    `json:"employeeNotificationsCreated"`
	HRNotifications       int    `json:"hrNotificationsCreated"`
	Skipped               bool   `json:"skipped"` // true si la fecha no era laborable
}

// NotificationResponse notificación expuesta por la API.
type NotificationResponse struct {
	ID        string `json:"id"`
	To        string `json:"to"`
	Type      string `json:"type"`
	EmpID     string `json:"empId"`
	Reason    string `json:"reason"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
	Streak    int    `json:"streak,omitempty"`
}
