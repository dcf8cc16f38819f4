package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository.
type NotificationRepo struct {
	col *mongo.Collection
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(db *mongo.Database) *NotificationRepo {
	return &NotificationRepo{col: db.Collection(colNotifications)}
}

// InsertIfAbsent inserta respetando el índice único (type, empId, date,
// reason). El duplicado se reporta como false, no como error.
func (r *NotificationRepo) InsertIfAbsent(n *entity.Notification) (bool, error) {
	doc := bson.M{
		"_id":       n.ID,
		"to":        n.To,
		"type":      n.Type,
		"empId":     n.EmpID,
		"reason":    n.Reason,
		"date":      n.Date.UTC(),
		"createdAt": n.CreatedAt.UTC(),
		"meta":      bson.M{"streak": n.Streak},
	}
	_, err := r.col.InsertOne(context.Background(), doc)
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insertar notificación: %w", err)
	}
	return true, nil
}

// ListByEmpID notificaciones que refieren al empleado, recientes primero.
func (r *NotificationRepo) ListByEmpID(empID string, limit int) ([]*entity.Notification, error) {
	return r.list(bson.M{"empId": empID}, limit)
}

// ListAll notificaciones de todos los empleados, recientes primero.
func (r *NotificationRepo) ListAll(limit int) ([]*entity.Notification, error) {
	return r.list(bson.M{}, limit)
}

func (r *NotificationRepo) list(filter bson.M, limit int) ([]*entity.Notification, error) {
	ctx := context.Background()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("listar notificaciones: %w", err)
	}
	defer cur.Close(ctx)

	var out []*entity.Notification
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		n := &entity.Notification{
			ID:        pickString(doc, "_id"),
			To:        pickString(doc, "to"),
			Type:      pickString(doc, "type"),
			EmpID:     pickString(doc, "empId"),
			Reason:    pickString(doc, "reason"),
			Date:      pickTime(doc, "date"),
			CreatedAt: pickTime(doc, "createdAt"),
		}
		if meta, ok := doc["meta"].(bson.M); ok {
			n.Streak = int(pickFloat(meta, "streak"))
		}
		out = append(out, n)
	}
	return out, cur.Err()
}
