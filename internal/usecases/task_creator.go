package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
)

// NewTaskInput carries the fields of a task to be created. Optional fields
// stay nil and fall back to their defaults.
type NewTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    *domain.TaskPriority
	Category    *string
}

// TaskCreator defines the interface for creating tasks within a unit of work.
type TaskCreator interface {
	Create(ctx context.Context, uow domain.UnitOfWork, ownerID string, input NewTaskInput) (domain.Task, error)
}

// TaskCreatorImpl is the implementation of the TaskCreator service.
type TaskCreatorImpl struct {
	timeProvider domain.CurrentTimeProvider
}

// NewTaskCreatorImpl creates a new instance of TaskCreatorImpl.
func NewTaskCreatorImpl(timeProvider domain.CurrentTimeProvider) TaskCreatorImpl {
	return TaskCreatorImpl{
		timeProvider: timeProvider,
	}
}

// Create validates and persists a new task and stages its creation event in
// the outbox, all within the provided unit of work.
func (tc TaskCreatorImpl) Create(ctx context.Context, uow domain.UnitOfWork, ownerID string, input NewTaskInput) (domain.Task, error) {
	now := tc.timeProvider.Now()

	task := domain.Task{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskStatus_Pending,
		Priority:    domain.TaskPriority_Medium,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Category != nil {
		task.Category = *input.Category
	}

	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}

	created, err := uow.Task().CreateTask(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}

	err = uow.Outbox().CreateTaskEvent(ctx, domain.TaskEvent{
		Type:      domain.EventType_TaskCreated,
		TaskID:    created.ID,
		OwnerID:   ownerID,
		CreatedAt: now,
	})
	if err != nil {
		return domain.Task{}, err
	}

	return created, nil
}

// InitTaskCreator initializes the TaskCreator and registers it in the dependency container.
type InitTaskCreator struct {
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the TaskCreatorImpl service and registers it in the dependency container.
func (itc InitTaskCreator) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TaskCreator](NewTaskCreatorImpl(itc.TimeService))
	return ctx, nil
}
