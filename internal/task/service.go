package task

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"taskboard/pkg/sanitizer"
	"taskboard/pkg/validator"
)

// Service implements the task operations on top of the scoped store.
type Service struct {
	storage Storage
}

// NewService creates the task service.
func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// CreateInput carries the fields for a new task. Status and Priority are
// optional and default to pending/medium.
type CreateInput struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     time.Time
}

// Create validates the input, applies defaults, and persists a new task
// owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID bson.ObjectID, in CreateInput) (*Task, error) {
	in.Title = sanitizer.Trim(in.Title)
	in.Description = sanitizer.Trim(in.Description)

	if in.Status == "" {
		in.Status = StatusPending
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}

	if err := validator.Apply(
		validator.Required("title", in.Title),
		validator.Required("description", in.Description),
		validator.RequiredTime("dueDate", in.DueDate),
		validator.OneOf("status", string(in.Status), Statuses()...),
		validator.OneOf("priority", string(in.Priority), Priorities()...),
	); err != nil {
		return nil, err
	}

	now := time.Now()
	t := &Task{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.Insert(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// List returns the owner's tasks matching the filter, ordered by due date.
func (s *Service) List(ctx context.Context, ownerID bson.ObjectID, f Filter) ([]Task, error) {
	var rules []validator.Rule
	if f.Status != nil {
		rules = append(rules, validator.OneOf("status", string(*f.Status), Statuses()...))
	}
	if f.Priority != nil {
		rules = append(rules, validator.OneOf("priority", string(*f.Priority), Priorities()...))
	}
	if err := validator.Apply(rules...); err != nil {
		return nil, err
	}

	tasks, err := s.storage.Find(ctx, ownerID, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns the owner's task with the given id.
func (s *Service) Get(ctx context.Context, ownerID, id bson.ObjectID) (*Task, error) {
	return s.storage.FindByID(ctx, ownerID, id)
}

// UpdateInput is a partial update: nil fields stay unchanged, set fields are
// validated like their create counterparts.
type UpdateInput struct {
	Title        *string
	Description  *string
	Status       *Status
	Priority     *Priority
	DueDate      *time.Time
	ReminderDate *time.Time
}

// Update applies the provided fields to the owner's task and returns the
// updated document. Absent fields are left untouched.
func (s *Service) Update(ctx context.Context, ownerID, id bson.ObjectID, in UpdateInput) (*Task, error) {
	t, err := s.storage.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	var rules []validator.Rule
	if in.Title != nil {
		*in.Title = sanitizer.Trim(*in.Title)
		rules = append(rules, validator.Required("title", *in.Title))
	}
	if in.Description != nil {
		*in.Description = sanitizer.Trim(*in.Description)
		rules = append(rules, validator.Required("description", *in.Description))
	}
	if in.Status != nil {
		rules = append(rules, validator.OneOf("status", string(*in.Status), Statuses()...))
	}
	if in.Priority != nil {
		rules = append(rules, validator.OneOf("priority", string(*in.Priority), Priorities()...))
	}
	if in.DueDate != nil {
		rules = append(rules, validator.RequiredTime("dueDate", *in.DueDate))
	}
	if err := validator.Apply(rules...); err != nil {
		return nil, err
	}

	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.DueDate != nil {
		t.DueDate = *in.DueDate
	}
	if in.ReminderDate != nil {
		t.ReminderDate = in.ReminderDate
	}
	t.UpdatedAt = time.Now()

	if err := s.storage.Replace(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the owner's task. Deleting an absent or already-deleted id
// returns ErrTaskNotFound on every call.
func (s *Service) Delete(ctx context.Context, ownerID, id bson.ObjectID) error {
	return s.storage.Delete(ctx, ownerID, id)
}

// SetReminder sets the reminder date on the owner's task.
func (s *Service) SetReminder(ctx context.Context, ownerID, id bson.ObjectID, reminder time.Time) (*Task, error) {
	if err := validator.Apply(validator.RequiredTime("reminderDate", reminder)); err != nil {
		return nil, err
	}

	t, err := s.storage.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	t.ReminderDate = &reminder
	t.UpdatedAt = time.Now()

	if err := s.storage.Replace(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
