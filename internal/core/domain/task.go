package domain

import (
	"errors"
	"time"
)

// TaskStatus is the three-value lifecycle of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

var ErrTaskNotFound = errors.New("task not found")
var ErrInvalidStatus = errors.New("invalid task status")

// Valid reports whether s is one of the three allowed statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task belongs to a project and is optionally assigned to a user.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ProjectID   string     `json:"project_id"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TaskView is a Task enriched with display names on read paths. Both names
// come from left joins and are nil when the related row is missing (an
// unassigned task, or a task orphaned by a project delete).
type TaskView struct {
	Task
	AssigneeName *string `json:"assigned_name,omitempty"`
	ProjectName  *string `json:"project_name,omitempty"`
}
