package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
)

// TaskPatch carries the fields to change on an existing task. Nil fields are
// left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	ClearDue    bool
	Priority    *domain.TaskPriority
	Category    *string
}

// IsEmpty reports whether the patch changes anything.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		!p.ClearDue && p.Priority == nil && p.Category == nil
}

// TaskUpdater defines the interface for modifying tasks within a unit of work.
type TaskUpdater interface {
	Update(ctx context.Context, uow domain.UnitOfWork, ownerID string, id int64, patch TaskPatch) (domain.Task, error)
	Complete(ctx context.Context, uow domain.UnitOfWork, ownerID string, id int64) (domain.Task, error)
}

// TaskUpdaterImpl is the implementation of the TaskUpdater interface.
type TaskUpdaterImpl struct {
	timeProvider domain.CurrentTimeProvider
}

// NewTaskUpdaterImpl creates a new instance of TaskUpdaterImpl.
func NewTaskUpdaterImpl(timeProvider domain.CurrentTimeProvider) TaskUpdaterImpl {
	return TaskUpdaterImpl{
		timeProvider: timeProvider,
	}
}

// Update applies the patch to the task identified by id and stages the
// update event in the outbox.
func (tu TaskUpdaterImpl) Update(ctx context.Context, uow domain.UnitOfWork, ownerID string, id int64, patch TaskPatch) (domain.Task, error) {
	now := tu.timeProvider.Now()

	task, found, err := uow.Task().GetTask(ctx, ownerID, id)
	if err != nil {
		return domain.Task{}, err
	}
	if !found {
		return domain.Task{}, domain.NewNotFoundErr(fmt.Sprintf("task %d not found", id))
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.ClearDue {
		task.DueDate = nil
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	task.UpdatedAt = now

	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}

	updated, err := uow.Task().UpdateTask(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}

	err = uow.Outbox().CreateTaskEvent(ctx, domain.TaskEvent{
		Type:      domain.EventType_TaskUpdated,
		TaskID:    updated.ID,
		OwnerID:   ownerID,
		CreatedAt: now,
	})
	if err != nil {
		return domain.Task{}, err
	}

	return updated, nil
}

// Complete marks the task as completed and stages the completion event.
// Completing an already completed task succeeds without a second event.
func (tu TaskUpdaterImpl) Complete(ctx context.Context, uow domain.UnitOfWork, ownerID string, id int64) (domain.Task, error) {
	now := tu.timeProvider.Now()

	task, found, err := uow.Task().GetTask(ctx, ownerID, id)
	if err != nil {
		return domain.Task{}, err
	}
	if !found {
		return domain.Task{}, domain.NewNotFoundErr(fmt.Sprintf("task %d not found", id))
	}

	if task.Status == domain.TaskStatus_Completed {
		return task, nil
	}

	task.MarkCompleted(now)

	updated, err := uow.Task().UpdateTask(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}

	err = uow.Outbox().CreateTaskEvent(ctx, domain.TaskEvent{
		Type:      domain.EventType_TaskCompleted,
		TaskID:    updated.ID,
		OwnerID:   ownerID,
		CreatedAt: now,
	})
	if err != nil {
		return domain.Task{}, err
	}

	return updated, nil
}

// InitTaskUpdater initializes the TaskUpdater and registers it in the dependency container.
type InitTaskUpdater struct {
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the TaskUpdaterImpl service.
func (itu InitTaskUpdater) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TaskUpdater](NewTaskUpdaterImpl(itu.TimeService))
	return ctx, nil
}
