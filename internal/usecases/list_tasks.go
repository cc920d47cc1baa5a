package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

// ListTasks defines the interface for the ListTasks use case.
type ListTasks interface {
	// Query returns the owner's tasks, newest first, narrowed by the options.
	Query(ctx context.Context, ownerID string, opts domain.ListTasksOptions) ([]domain.Task, error)
}

// ListTasksImpl is the implementation of the ListTasks use case.
type ListTasksImpl struct {
	taskRepo domain.TaskRepository
}

// NewListTasksImpl creates a new instance of ListTasksImpl.
func NewListTasksImpl(taskRepo domain.TaskRepository) ListTasksImpl {
	return ListTasksImpl{
		taskRepo: taskRepo,
	}
}

// Query returns the owner's tasks, newest first, narrowed by the options.
func (lt ListTasksImpl) Query(ctx context.Context, ownerID string, opts domain.ListTasksOptions) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	tasks, err := lt.taskRepo.ListTasks(spanCtx, ownerID, opts)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return tasks, nil
}

// InitListTasks initializes the ListTasks use case and registers it in the dependency container.
type InitListTasks struct {
	TaskRepo domain.TaskRepository `resolve:""`
}

// Initialize initializes the ListTasksImpl use case.
func (ilt InitListTasks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTasks](NewListTasksImpl(ilt.TaskRepo))
	return ctx, nil
}
