package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/freight-service/internal/domain/model"
)

// ErrDuplicateUser is returned when the email is already registered.
var ErrDuplicateUser = errors.New("user already exists")

// UsersRepository stores operator accounts.
type UsersRepository struct {
	collection *mongo.Collection
}

// NewUsersRepository creates a new users repository.
func NewUsersRepository(db *MongoDB) *UsersRepository {
	return &UsersRepository{
		collection: db.Users,
	}
}

// Create inserts user, assigning its ID and timestamps.
func (r *UsersRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUser
	}
	return err
}

// FindByEmail returns the user with email, or nil when there is none.
func (r *UsersRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByID returns the user with id, or nil when there is none.
func (r *UsersRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UsersRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
