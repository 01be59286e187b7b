package auth_test

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"taskboard/internal/auth"
)

// fakeStorage is an in-memory credential store for tests. Insert enforces
// email uniqueness under a lock, mirroring the unique index contract.
type fakeStorage struct {
	mu    sync.Mutex
	users map[bson.ObjectID]*auth.User
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{users: make(map[bson.ObjectID]*auth.User)}
}

func (s *fakeStorage) Insert(_ context.Context, user *auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return auth.ErrEmailTaken
		}
	}

	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *fakeStorage) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (s *fakeStorage) FindByID(_ context.Context, id bson.ObjectID) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *fakeStorage) delete(id bson.ObjectID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}
