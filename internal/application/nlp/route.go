// Package nlp implementa el asistente de texto libre de RRHH: un router de
// intents (LLM con fallback a reglas) y un executor que resuelve cada
// intent contra los repositorios.
package nlp

// Intents soportados por el router.
const (
	IntentPolicyQA       = "policy_qa"
	IntentLeaveBalance   = "leave_balance"
	IntentLeaveStatus    = "leave_status"
	IntentLeaveHowto     = "leave_howto"
	IntentUtilityCount   = "utility_count"
	IntentUtilityList    = "utility_list"
	IntentEmployeeLookup = "employee_lookup"
	IntentSmalltalk      = "smalltalk"
)

// intents lista cerrada; el router descarta cualquier intent fuera de ella.
var intents = map[string]bool{
	IntentPolicyQA:       true,
	IntentLeaveBalance:   true,
	IntentLeaveStatus:    true,
	IntentLeaveHowto:     true,
	IntentUtilityCount:   true,
	IntentUtilityList:    true,
	IntentEmployeeLookup: true,
	IntentSmalltalk:      true,
}

// EmployeeSlot referencia a un empleado extraída de la consulta.
type EmployeeSlot struct {
	Name  string `json:"name"`
	EmpID string `json:"emp_id"`
}

// MetaSlot modificadores de la consulta.
type MetaSlot struct {
	WantsCount     bool   `json:"wants_count"`
	WantsList      bool   `json:"wants_list"`
	ListTarget     string `json:"list_target"`     // policies | categories
	DirectoryField string `json:"directory_field"` // full_name | email | dept | emp_id
}

// RouteResult intent + slots estructurados de una consulta en texto libre.
type RouteResult struct {
	Intent      string       `json:"intent"`
	Employee    EmployeeSlot `json:"employee"`
	LeaveType   string       `json:"leave_type"` // annual | sick | casual | ""
	PolicyTopic string       `json:"policy_topic"`
	Meta        MetaSlot     `json:"meta"`
	Confidence  float64      `json:"confidence"`
}
