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

var _ repository.PolicyRepository = (*PolicyRepo)(nil)

// PolicyRepo búsqueda de políticas sobre el índice $text clásico.
type PolicyRepo struct {
	col *mongo.Collection
}

// NewPolicyRepository construye el adaptador de políticas.
func NewPolicyRepository(db *mongo.Database) *PolicyRepo {
	return &PolicyRepo{col: db.Collection(colPolicies)}
}

func decodePolicy(doc bson.M) *entity.Policy {
	return &entity.Policy{
		Title:       pickString(doc, "title"),
		Slug:        pickString(doc, "slug"),
		Category:    pickString(doc, "category"),
		Description: pickString(doc, "policy_description", "description"),
		Score:       pickFloat(doc, "score"),
	}
}

// SearchTop documento más relevante para el topic, nil si no hay match.
func (r *PolicyRepo) SearchTop(topic string) (*entity.Policy, error) {
	results, err := r.textSearch(topic, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// List por relevancia si hay topic, alfabética si no.
func (r *PolicyRepo) List(topic string, limit int) ([]*entity.Policy, error) {
	if topic != "" {
		return r.textSearch(topic, limit)
	}

	ctx := context.Background()
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "title", Value: 1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("listar políticas: %w", err)
	}
	defer cur.Close(ctx)
	return decodePolicies(ctx, cur)
}

// Count políticas que matchean topic, o el total.
func (r *PolicyRepo) Count(topic string) (int64, error) {
	filter := bson.M{}
	if topic != "" {
		filter = bson.M{"$text": bson.M{"$search": topic}}
	}
	return r.col.CountDocuments(context.Background(), filter)
}

func (r *PolicyRepo) textSearch(topic string, limit int) ([]*entity.Policy, error) {
	ctx := context.Background()
	cur, err := r.col.Find(ctx,
		bson.M{"$text": bson.M{"$search": topic}},
		options.Find().
			SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
			SetSort(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, fmt.Errorf("buscar políticas %q: %w", topic, err)
	}
	defer cur.Close(ctx)
	return decodePolicies(ctx, cur)
}

func decodePolicies(ctx context.Context, cur *mongo.Cursor) ([]*entity.Policy, error) {
	var out []*entity.Policy
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, decodePolicy(doc))
	}
	return out, cur.Err()
}
