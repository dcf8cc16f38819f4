// Package mongodb contiene los adaptadores de persistencia sobre MongoDB.
// Las colecciones históricas arrastran alias de campo inconsistentes
// (emp_id/employeeCode, full_name/fullName/name); los repositorios de este
// paquete resuelven esos alias y el resto del sistema solo ve entidades.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Nombres de colección. "Employee Insights" conserva su nombre histórico
// con espacio; es una colección externa de solo lectura.
const (
	colEmployees     = "employees"
	colAttendance    = "attendance"
	colNotifications = "notifications"
	colAccounts      = "accounts"
	colPolicies      = "policies"
	colLeaveBalances = "leave_balances"
	colLeaveRequests = "leave_requests"
	colInsights      = "Employee Insights"
	colScores        = "prehire_scores"
)

const connectTimeout = 10 * time.Second

// Connect abre el cliente, verifica conectividad y asegura los índices que
// sostienen las garantías de unicidad del sistema.
func Connect(uri, database string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("conectar a mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping a mongo: %w", err)
	}

	db := client.Database(database)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// Disconnect cierra el cliente subyacente.
func Disconnect(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return db.Client().Disconnect(ctx)
}

// ensureIndexes es idempotente; se ejecuta en cada arranque.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	// Un registro de asistencia por (empleado, fecha local): el invariante
	// central del módulo de asistencia se sostiene acá, no en el código.
	_, err := db.Collection(colAttendance).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employeeCode", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_emp_date"),
	})
	if err != nil {
		return fmt.Errorf("índice de attendance: %w", err)
	}

	// Una notificación por (tipo, empleado, día, razón): idempotencia del
	// batch de tardanzas.
	_, err = db.Collection(colNotifications).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "type", Value: 1}, {Key: "empId", Value: 1},
			{Key: "date", Value: 1}, {Key: "reason", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_notif_per_reason_day_emp"),
	})
	if err != nil {
		return fmt.Errorf("índice de notifications: %w", err)
	}

	// Búsqueda de texto sobre políticas.
	_, err = db.Collection(colPolicies).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "policy_description", Value: "text"},
			{Key: "tags", Value: "text"},
			{Key: "category", Value: "text"},
		},
		Options: options.Index().SetName("policy_text_search"),
	})
	if err != nil {
		return fmt.Errorf("índice de policies: %w", err)
	}
	return nil
}
