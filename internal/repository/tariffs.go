package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/freight-service/internal/domain/model"
)

// TariffsRepository stores versioned tariffs. At most one tariff is active at a time.
type TariffsRepository struct {
	collection *mongo.Collection
}

// NewTariffsRepository creates a new tariffs repository.
func NewTariffsRepository(db *MongoDB) *TariffsRepository {
	return &TariffsRepository{
		collection: db.Tariffs,
	}
}

// GetActive returns the active tariff, or nil when none has been stored.
func (r *TariffsRepository) GetActive(ctx context.Context) (*model.Tariff, error) {
	var tariff model.Tariff
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&tariff)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tariff, nil
}

// Create stores tariff as the new active tariff and deactivates the previous ones.
// The version continues from the latest stored tariff.
func (r *TariffsRepository) Create(ctx context.Context, tariff model.Tariff, createdBy string) (*model.Tariff, error) {
	version := 1
	var latest model.Tariff
	err := r.collection.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})).Decode(&latest)
	switch {
	case err == nil:
		version = latest.Version + 1
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	now := time.Now()
	if _, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": now}},
	); err != nil {
		return nil, err
	}

	tariff.ID = primitive.NewObjectID()
	tariff.Active = true
	tariff.Version = version
	tariff.CreatedAt = now
	tariff.UpdatedAt = now
	tariff.CreatedBy = createdBy

	if _, err := r.collection.InsertOne(ctx, tariff); err != nil {
		return nil, err
	}
	return &tariff, nil
}

// List returns stored tariffs, newest first.
func (r *TariffsRepository) List(ctx context.Context, limit int) ([]model.Tariff, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	tariffs := make([]model.Tariff, 0)
	if err := cursor.All(ctx, &tariffs); err != nil {
		return nil, err
	}
	return tariffs, nil
}
