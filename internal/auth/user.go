// Package auth implements credential and token authentication: user
// registration with hashed passwords, login, token issuing/verification,
// and the request middleware that resolves a bearer token to a user.
package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a registered account. The password hash never leaves the server.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash []byte        `bson:"password_hash" json:"-"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
}
