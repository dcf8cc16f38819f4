package repository

import "github.com/jhoicas/smarthr-api/internal/domain/entity"

// EmployeeRepository puerto de persistencia para empleados.
// Las implementaciones devuelven (nil, nil) cuando no hay coincidencia.
type EmployeeRepository interface {
	// FindByCode busca por identificador de empleado (emp_id/employeeCode).
	FindByCode(code string) (*entity.Employee, error)
	// FindByNameExact busca por nombre completo exacto, case-insensitive.
	FindByNameExact(name string) ([]*entity.Employee, error)
	// FindByNamePrefix busca por prefijo de nombre, case-insensitive.
	FindByNamePrefix(name string) ([]*entity.Employee, error)
	// ListEnrolled devuelve los empleados con embedding facial almacenado.
	ListEnrolled() ([]*entity.Employee, error)
	// UpsertEmbedding crea el empleado si no existe y fija su embedding.
	UpsertEmbedding(code string, embedding []float32) error
	// FullNamesByCodes devuelve code -> nombre completo para los códigos dados.
	FullNamesByCodes(codes []string) (map[string]string, error)
	// Count total de empleados; CountByDept filtra por departamento
	// (alias dept/department/department_name resueltos por la implementación).
	Count() (int64, error)
	CountByDept(dept string) (int64, error)
}
