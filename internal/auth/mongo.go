package auth

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const usersCollection = "users"

// MongoStorage is the MongoDB-backed credential store.
type MongoStorage struct {
	users *mongo.Collection
}

// NewMongoStorage returns a credential store over the given database.
// Call EnsureIndexes once at startup before serving requests.
func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{users: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. The index, not an
// application-level pre-check, is what makes concurrent registrations with
// the same email resolve to exactly one success.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique email index: %w", err)
	}
	return nil
}

func (s *MongoStorage) Insert(ctx context.Context, user *User) error {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *MongoStorage) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

func (s *MongoStorage) FindByID(ctx context.Context, id bson.ObjectID) (*User, error) {
	var user User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return &user, nil
}
