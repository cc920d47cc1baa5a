package domain

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatus_Pending   TaskStatus = "pending"
	TaskStatus_Completed TaskStatus = "completed"
)

const (
	maxTaskTitleLen       = 200
	maxTaskDescriptionLen = 1000
	maxTaskCategoryLen    = 50

	defaultListTasksLimit = 100
	maxListTasksLimit     = 100
)

// Task represents a single todo item owned by a user.
type Task struct {
	ID          int64
	OwnerID     string
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	Category    string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// Validate checks the task fields against the persistence constraints.
func (t Task) Validate() error {
	if t.Title == "" {
		return NewValidationErr("title is required")
	}
	if utf8.RuneCountInString(t.Title) > maxTaskTitleLen {
		return NewValidationErr(fmt.Sprintf("title exceeds %d characters", maxTaskTitleLen))
	}
	if utf8.RuneCountInString(t.Description) > maxTaskDescriptionLen {
		return NewValidationErr(fmt.Sprintf("description exceeds %d characters", maxTaskDescriptionLen))
	}
	if utf8.RuneCountInString(t.Category) > maxTaskCategoryLen {
		return NewValidationErr(fmt.Sprintf("category exceeds %d characters", maxTaskCategoryLen))
	}
	if !ValidTaskPriority(t.Priority) {
		return NewValidationErr("priority must be one of low, medium, high")
	}
	if t.Status != TaskStatus_Pending && t.Status != TaskStatus_Completed {
		return NewValidationErr("status must be pending or completed")
	}
	return nil
}

// MarkCompleted transitions the task to completed at the given time.
// Completing an already completed task is a no-op.
func (t *Task) MarkCompleted(at time.Time) {
	if t.Status == TaskStatus_Completed {
		return
	}
	t.Status = TaskStatus_Completed
	t.CompletedAt = &at
	t.UpdatedAt = at
}

// ListTasksOptions narrows a task listing. Zero-value fields do not filter.
type ListTasksOptions struct {
	Status    TaskStatus
	Category  string
	DueBefore *time.Time
	Limit     int
}

// EffectiveLimit clamps the requested limit into the allowed range.
func (o ListTasksOptions) EffectiveLimit() int {
	if o.Limit <= 0 {
		return defaultListTasksLimit
	}
	if o.Limit > maxListTasksLimit {
		return maxListTasksLimit
	}
	return o.Limit
}

// TaskRepository persists tasks. All reads and writes are scoped to an
// owner; a task id from another owner behaves as not found.
type TaskRepository interface {
	CreateTask(ctx context.Context, task Task) (Task, error)
	GetTask(ctx context.Context, ownerID string, id int64) (Task, bool, error)
	ListTasks(ctx context.Context, ownerID string, opts ListTasksOptions) ([]Task, error)
	UpdateTask(ctx context.Context, task Task) (Task, error)
	DeleteTask(ctx context.Context, ownerID string, id int64) (bool, error)
}
