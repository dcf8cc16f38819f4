package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository.
type AccountRepo struct {
	col *mongo.Collection
}

// NewAccountRepository construye el adaptador de cuentas.
func NewAccountRepository(db *mongo.Database) *AccountRepo {
	return &AccountRepo{col: db.Collection(colAccounts)}
}

// FindActiveByEmpID cuenta activa del empleado, nil si no hay.
func (r *AccountRepo) FindActiveByEmpID(empID string) (*entity.Account, error) {
	var doc bson.M
	err := r.col.FindOne(context.Background(), bson.M{
		"$or":    bson.A{bson.M{"emp_id": empID}, bson.M{"empId": empID}},
		"status": "active",
	}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar cuenta de %s: %w", empID, err)
	}
	return &entity.Account{
		EmpID:        pickString(doc, "emp_id", "empId"),
		PasswordHash: pickString(doc, "password_hash", "passwordHash", "password"),
		AccountType:  pickString(doc, "account_type", "accountType", "role"),
		Status:       pickString(doc, "status"),
	}, nil
}
