package task

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const tasksCollection = "tasks"

// MongoStorage is the MongoDB-backed task store.
type MongoStorage struct {
	tasks *mongo.Collection
}

// NewMongoStorage returns a task store over the given database.
func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{tasks: db.Collection(tasksCollection)}
}

// EnsureIndexes creates the owner/due-date index backing scoped listings.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "due_date", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create task indexes: %w", err)
	}
	return nil
}

func (s *MongoStorage) Insert(ctx context.Context, t *Task) error {
	if t.ID.IsZero() {
		t.ID = bson.NewObjectID()
	}

	if _, err := s.tasks.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (s *MongoStorage) FindByID(ctx context.Context, ownerID, id bson.ObjectID) (*Task, error) {
	var t Task
	err := s.tasks.FindOne(ctx, scopedFilter(ownerID, id)).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

func (s *MongoStorage) Find(ctx context.Context, ownerID bson.ObjectID, f Filter) ([]Task, error) {
	filter := bson.M{"owner_id": ownerID}
	if f.Status != nil {
		filter["status"] = *f.Status
	}
	if f.Priority != nil {
		filter["priority"] = *f.Priority
	}

	dir := 1
	if f.SortDesc {
		dir = -1
	}

	cursor, err := s.tasks.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "due_date", Value: dir}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]Task, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

func (s *MongoStorage) Replace(ctx context.Context, t *Task) error {
	res, err := s.tasks.ReplaceOne(ctx, scopedFilter(t.OwnerID, t.ID), t)
	if err != nil {
		return fmt.Errorf("failed to replace task: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *MongoStorage) Delete(ctx context.Context, ownerID, id bson.ObjectID) error {
	res, err := s.tasks.DeleteOne(ctx, scopedFilter(ownerID, id))
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// scopedFilter matches a task by id only within the owner's scope.
func scopedFilter(ownerID, id bson.ObjectID) bson.M {
	return bson.M{"_id": id, "owner_id": ownerID}
}
