package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

var _ repository.LeaveRepository = (*LeaveRepo)(nil)

// LeaveRepo consultas de saldos y solicitudes de licencia.
type LeaveRepo struct {
	balances *mongo.Collection
	requests *mongo.Collection
}

// NewLeaveRepository construye el adaptador de licencias.
func NewLeaveRepository(db *mongo.Database) *LeaveRepo {
	return &LeaveRepo{
		balances: db.Collection(colLeaveBalances),
		requests: db.Collection(colLeaveRequests),
	}
}

// Balance saldo del empleado, nil si no tiene.
func (r *LeaveRepo) Balance(empID string) (*entity.LeaveBalance, error) {
	var doc bson.M
	err := r.balances.FindOne(context.Background(), bson.M{"emp_id": empID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar saldo de %s: %w", empID, err)
	}
	return &entity.LeaveBalance{
		EmpID:     pickString(doc, "emp_id"),
		Annual:    int(pickFloat(doc, "annual")),
		Sick:      int(pickFloat(doc, "sick")),
		Casual:    int(pickFloat(doc, "casual")),
		UpdatedAt: pickTime(doc, "updated_at", "updatedAt"),
	}, nil
}

// LastRequest última solicitud, opcionalmente filtrada por tipo.
func (r *LeaveRepo) LastRequest(empID, leaveType string) (*entity.LeaveRequest, error) {
	filter := bson.M{"emp_id": empID}
	if leaveType != "" {
		filter["type"] = leaveType
	}

	var doc bson.M
	err := r.requests.FindOne(context.Background(), filter,
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar última solicitud de %s: %w", empID, err)
	}
	return &entity.LeaveRequest{
		EmpID:     pickString(doc, "emp_id"),
		Type:      pickString(doc, "type"),
		Status:    pickString(doc, "status"),
		Start:     pickTime(doc, "start"),
		End:       pickTime(doc, "end"),
		CreatedAt: pickTime(doc, "created_at", "createdAt"),
	}, nil
}

// CountRequests total de solicitudes, opcionalmente por estado. El estado
// se normaliza: "pending" y "Pending" cuentan lo mismo.
func (r *LeaveRepo) CountRequests(status string) (int64, error) {
	filter := bson.M{}
	if s := strings.TrimSpace(status); s != "" {
		filter["status"] = bson.M{
			"$regex":   "^" + regexp.QuoteMeta(s) + "$",
			"$options": "i",
		}
	}
	return r.requests.CountDocuments(context.Background(), filter)
}
