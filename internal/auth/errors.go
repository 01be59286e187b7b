package auth

import "errors"

// User and credential errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Token errors
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("malformed token")
	ErrMissingSecret  = errors.New("missing token signing secret")
	ErrNoToken        = errors.New("authorization token required")
)
