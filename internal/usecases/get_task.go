package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

// GetTask defines the interface for the GetTask use case.
type GetTask interface {
	Query(ctx context.Context, ownerID string, id int64) (domain.Task, error)
}

// GetTaskImpl is the implementation of the GetTask use case.
type GetTaskImpl struct {
	taskRepo domain.TaskRepository
}

// NewGetTaskImpl creates a new instance of GetTaskImpl.
func NewGetTaskImpl(taskRepo domain.TaskRepository) GetTaskImpl {
	return GetTaskImpl{
		taskRepo: taskRepo,
	}
}

// Query returns a single task by id.
func (gt GetTaskImpl) Query(ctx context.Context, ownerID string, id int64) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	task, found, err := gt.taskRepo.GetTask(spanCtx, ownerID, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("task %d not found", id))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Task{}, err
	}

	return task, nil
}

// InitGetTask initializes the GetTask use case and registers it in the dependency container.
type InitGetTask struct {
	TaskRepo domain.TaskRepository `resolve:""`
}

// Initialize initializes the GetTaskImpl use case.
func (igt InitGetTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetTask](NewGetTaskImpl(igt.TaskRepo))
	return ctx, nil
}
