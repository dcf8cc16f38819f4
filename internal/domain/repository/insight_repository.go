package repository

import "github.com/jhoicas/smarthr-api/internal/domain/entity"

// InsightRepository acceso de solo lectura a "Employee Insights", la fuente
// de features de turnover y performance.
type InsightRepository interface {
	ListAll() ([]*entity.EmployeeInsight, error)
}
