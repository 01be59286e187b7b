package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var userIDContextKey = &contextKey{name: "auth_user_id"}

// WithUserID returns a context carrying the authenticated user's id.
func WithUserID(ctx context.Context, id bson.ObjectID) context.Context {
	return context.WithValue(ctx, userIDContextKey, id)
}

// UserID returns the authenticated user's id from the context. Handlers must
// use this value as the ownership key, never an id taken from request input.
func UserID(ctx context.Context) (bson.ObjectID, bool) {
	id, ok := ctx.Value(userIDContextKey).(bson.ObjectID)
	return id, ok
}
