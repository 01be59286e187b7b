package task

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Filter narrows and orders a task listing. Nil fields match everything;
// results are ordered by due date, ascending unless SortDesc is set.
type Filter struct {
	Status   *Status
	Priority *Priority
	SortDesc bool
}

// Storage defines the scoped task store operations. Every method takes the
// caller's owner id as a non-bypassable filter; no operation can observe or
// touch another owner's tasks.
type Storage interface {
	// Insert persists a new task, assigning its id.
	Insert(ctx context.Context, t *Task) error

	// FindByID returns the task with the given id under the owner, or
	// ErrTaskNotFound.
	FindByID(ctx context.Context, ownerID, id bson.ObjectID) (*Task, error)

	// Find returns the owner's tasks matching the filter, sorted by due
	// date. An empty result is a valid outcome, never an error.
	Find(ctx context.Context, ownerID bson.ObjectID, f Filter) ([]Task, error)

	// Replace overwrites the stored task matched by its id and owner id, or
	// returns ErrTaskNotFound. Concurrent replacements are last-write-wins.
	Replace(ctx context.Context, t *Task) error

	// Delete removes the task under the owner, or returns ErrTaskNotFound.
	Delete(ctx context.Context, ownerID, id bson.ObjectID) error
}
