package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
)

// TaskDeleter defines the interface for deleting tasks within a unit of work.
type TaskDeleter interface {
	Delete(ctx context.Context, uow domain.UnitOfWork, ownerID string, id int64) (domain.Task, error)
}

// TaskDeleterImpl is the implementation of the TaskDeleter interface.
type TaskDeleterImpl struct {
	timeProvider domain.CurrentTimeProvider
}

// NewTaskDeleterImpl creates a new instance of TaskDeleterImpl.
func NewTaskDeleterImpl(timeProvider domain.CurrentTimeProvider) TaskDeleterImpl {
	return TaskDeleterImpl{
		timeProvider: timeProvider,
	}
}

// Delete removes a task by its id and stages the deletion event. The deleted
// task is returned so callers can mention its title in the reply.
func (td TaskDeleterImpl) Delete(ctx context.Context, uow domain.UnitOfWork, ownerID string, id int64) (domain.Task, error) {
	task, found, err := uow.Task().GetTask(ctx, ownerID, id)
	if err != nil {
		return domain.Task{}, err
	}
	if !found {
		return domain.Task{}, domain.NewNotFoundErr(fmt.Sprintf("task %d not found", id))
	}

	deleted, err := uow.Task().DeleteTask(ctx, ownerID, id)
	if err != nil {
		return domain.Task{}, err
	}
	if !deleted {
		return domain.Task{}, domain.NewNotFoundErr(fmt.Sprintf("task %d not found", id))
	}

	err = uow.Outbox().CreateTaskEvent(ctx, domain.TaskEvent{
		Type:      domain.EventType_TaskDeleted,
		TaskID:    id,
		OwnerID:   ownerID,
		CreatedAt: td.timeProvider.Now(),
	})
	if err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

// InitTaskDeleter initializes the TaskDeleter.
type InitTaskDeleter struct {
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the TaskDeleter service in the dependency container.
func (i InitTaskDeleter) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TaskDeleter](NewTaskDeleterImpl(i.TimeProvider))
	return ctx, nil
}
