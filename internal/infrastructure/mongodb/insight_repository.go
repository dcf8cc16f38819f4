package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

var _ repository.InsightRepository = (*InsightRepo)(nil)

// InsightRepo lectura de la colección "Employee Insights". Los documentos
// son planos pero algunos anidan las features bajo "features"; ambos shapes
// se aceptan.
type InsightRepo struct {
	col *mongo.Collection
}

// NewInsightRepository construye el adaptador de insights.
func NewInsightRepository(db *mongo.Database) *InsightRepo {
	return &InsightRepo{col: db.Collection(colInsights)}
}

// ListAll todos los documentos de insights.
func (r *InsightRepo) ListAll() ([]*entity.EmployeeInsight, error) {
	ctx := context.Background()
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listar insights: %w", err)
	}
	defer cur.Close(ctx)

	var out []*entity.EmployeeInsight
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}

		features := doc
		if nested, ok := doc["features"].(bson.M); ok {
			features = nested
		}

		out = append(out, &entity.EmployeeInsight{
			EmpID:      pickString(doc, "emp_id", "employee_id", "EmployeeID", "EmpID", "id"),
			FullName:   pickString(doc, "full_name", "fullName", "FullName", "name"),
			Department: pickString(doc, "department", "Department", "dept", "Dept"),
			JobRole:    pickString(doc, "job_role", "JobRole", "jobTitle", "JobTitle", "role"),
			Features:   map[string]any(features),
		})
	}
	return out, cur.Err()
}
