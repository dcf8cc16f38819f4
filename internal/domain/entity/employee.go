package entity

// Employee forma canónica de un empleado. Las colecciones históricas usan
// alias inconsistentes (emp_id/employeeCode, full_name/fullName/name, dept/
// department); el adaptador de persistencia resuelve cada alias a este shape
// único y el resto del sistema nunca ve los nombres crudos.
type Employee struct {
	EmpID     string
	FullName  string
	Email     string
	Dept      string
	Embedding []float32 // embedding facial normalizado; nil si no está enrolado
}

// Enrolled indica si el empleado tiene un embedding facial almacenado.
func (e *Employee) Enrolled() bool {
	return len(e.Embedding) > 0
}
