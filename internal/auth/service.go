package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskboard/pkg/sanitizer"
	"taskboard/pkg/validator"
)

// Service provides registration and login on top of the credential store.
type Service struct {
	storage    Storage
	tokens     *TokenService
	logger     *slog.Logger
	bcryptCost int
}

// Option configures the authentication service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBcryptCost sets the bcrypt cost for password hashing.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = cost }
}

// NewService creates the authentication service.
func NewService(storage Storage, tokens *TokenService, opts ...Option) *Service {
	s := &Service{
		storage:    storage,
		tokens:     tokens,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a new user and returns it with a freshly issued token.
// The plaintext password is hashed before anything is persisted and never
// stored. Returns ErrEmailTaken when the normalized email is already in use.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, string, error) {
	name = sanitizer.Trim(name)
	email = sanitizer.NormalizeEmail(email)

	if err := validator.Apply(
		validator.Required("name", name),
		validator.ValidEmail("email", email),
		validator.Required("password", password),
	); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	// The store's unique index resolves the race between concurrent
	// registrations; no pre-check can.
	if err := s.storage.Insert(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// Login verifies the credentials and returns a token. Every failure mode
// collapses into ErrInvalidCredentials to prevent user enumeration.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = sanitizer.NormalizeEmail(email)

	if err := validator.Apply(
		validator.Required("email", email),
		validator.Required("password", password),
	); err != nil {
		return "", err
	}

	user, err := s.storage.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
