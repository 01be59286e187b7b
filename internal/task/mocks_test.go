package task_test

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"taskboard/internal/task"
)

// fakeStorage is an in-memory task store for tests, scoped the same way the
// Mongo implementation is: every lookup matches both id and owner id.
type fakeStorage struct {
	mu    sync.Mutex
	tasks map[bson.ObjectID]task.Task
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{tasks: make(map[bson.ObjectID]task.Task)}
}

func (s *fakeStorage) Insert(_ context.Context, t *task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID.IsZero() {
		t.ID = bson.NewObjectID()
	}
	s.tasks[t.ID] = *t
	return nil
}

func (s *fakeStorage) FindByID(_ context.Context, ownerID, id bson.ObjectID) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return nil, task.ErrTaskNotFound
	}
	clone := t
	return &clone, nil
}

func (s *fakeStorage) Find(_ context.Context, ownerID bson.ObjectID, f task.Filter) ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]task.Task, 0)
	for _, t := range s.tasks {
		if t.OwnerID != ownerID {
			continue
		}
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if f.Priority != nil && t.Priority != *f.Priority {
			continue
		}
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool {
		if f.SortDesc {
			return result[i].DueDate.After(result[j].DueDate)
		}
		return result[i].DueDate.Before(result[j].DueDate)
	})
	return result, nil
}

func (s *fakeStorage) Replace(_ context.Context, t *task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[t.ID]
	if !ok || existing.OwnerID != t.OwnerID {
		return task.ErrTaskNotFound
	}
	s.tasks[t.ID] = *t
	return nil
}

func (s *fakeStorage) Delete(_ context.Context, ownerID, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return task.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}
