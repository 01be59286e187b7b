// Package task implements the per-user task store and its HTTP surface.
// Every store operation is scoped by the owner id resolved during
// authentication; a task is visible and mutable only through its owner.
package task

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Status is the task progress state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists the accepted status values.
func Statuses() []string {
	return []string{string(StatusPending), string(StatusInProgress), string(StatusCompleted)}
}

// Priority is the task urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the accepted priority values.
func Priorities() []string {
	return []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}
}

// Task is a single to-do item owned by exactly one user.
type Task struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID      bson.ObjectID `bson:"owner_id" json:"ownerId"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	Status       Status        `bson:"status" json:"status"`
	Priority     Priority      `bson:"priority" json:"priority"`
	DueDate      time.Time     `bson:"due_date" json:"dueDate"`
	ReminderDate *time.Time    `bson:"reminder_date,omitempty" json:"reminderDate,omitempty"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updatedAt"`
}
