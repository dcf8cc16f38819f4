package entity

// EmployeeInsight documento de la colección "Employee Insights" (solo
// lectura): fuente de features para turnover y performance. Identidad ya
// normalizada por el repositorio; Features conserva los campos crudos que
// consume el scorer.
type EmployeeInsight struct {
	EmpID      string
	FullName   string
	Department string
	JobRole    string
	Features   map[string]any
}
