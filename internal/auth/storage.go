package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Storage defines the credential store operations required by the
// authentication service and middleware. Implementations must treat the
// normalized email as globally unique; Insert is the atomic arbiter of that
// invariant.
type Storage interface {
	// Insert persists a new user. It returns ErrEmailTaken when another user
	// already holds the same normalized email, even under concurrent inserts.
	Insert(ctx context.Context, user *User) error

	// FindByEmail returns the user with the given normalized email, or
	// ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the user with the given id, or ErrUserNotFound.
	FindByID(ctx context.Context, id bson.ObjectID) (*User, error)
}
