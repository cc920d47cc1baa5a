package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

// CreateTask defines the interface for the CreateTask use case.
type CreateTask interface {
	Execute(ctx context.Context, ownerID string, input NewTaskInput) (domain.Task, error)
}

// CreateTaskImpl is the implementation of the CreateTask use case.
type CreateTaskImpl struct {
	uow     domain.UnitOfWork
	creator TaskCreator
}

// NewCreateTaskImpl creates a new instance of CreateTaskImpl.
func NewCreateTaskImpl(uow domain.UnitOfWork, creator TaskCreator) CreateTaskImpl {
	return CreateTaskImpl{
		uow:     uow,
		creator: creator,
	}
}

// Execute creates a new task for the owner.
func (ct CreateTaskImpl) Execute(ctx context.Context, ownerID string, input NewTaskInput) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var task domain.Task
	err := ct.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		var err error
		task, err = ct.creator.Create(spanCtx, uow, ownerID, input)
		return err
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	return task, nil
}

// InitCreateTask initializes the CreateTask use case and registers it in the dependency container.
type InitCreateTask struct {
	Uow     domain.UnitOfWork `resolve:""`
	Creator TaskCreator       `resolve:""`
}

// Initialize initializes the CreateTaskImpl use case.
func (ict InitCreateTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateTask](NewCreateTaskImpl(ict.Uow, ict.Creator))
	return ctx, nil
}
