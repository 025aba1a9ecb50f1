package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/freight-service/internal/domain/model"
)

// PartsRepository stores the parts catalog in import order.
type PartsRepository struct {
	collection *mongo.Collection
}

// NewPartsRepository creates a new parts repository.
func NewPartsRepository(db *MongoDB) *PartsRepository {
	return &PartsRepository{
		collection: db.Parts,
	}
}

// ReplaceAll swaps the stored catalog for parts. The delete and the insert are
// separate writes.
func (r *PartsRepository) ReplaceAll(ctx context.Context, parts []model.PartSpec) error {
	now := time.Now()
	docs := make([]interface{}, len(parts))
	for i, p := range parts {
		docs[i] = model.CatalogDocument{PartSpec: p, Position: i, ImportedAt: now}
	}

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

// List returns the whole catalog in import order.
func (r *PartsRepository) List(ctx context.Context) ([]model.PartSpec, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []model.CatalogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	parts := make([]model.PartSpec, len(docs))
	for i, d := range docs {
		parts[i] = d.PartSpec
	}
	return parts, nil
}

// Count returns the number of stored catalog records.
func (r *PartsRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
