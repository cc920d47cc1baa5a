package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

// CompleteTask defines the interface for the CompleteTask use case.
type CompleteTask interface {
	Execute(ctx context.Context, ownerID string, id int64) (domain.Task, error)
}

// CompleteTaskImpl is the implementation of the CompleteTask use case.
type CompleteTaskImpl struct {
	uow     domain.UnitOfWork
	updater TaskUpdater
}

// NewCompleteTaskImpl creates a new instance of CompleteTaskImpl.
func NewCompleteTaskImpl(uow domain.UnitOfWork, updater TaskUpdater) CompleteTaskImpl {
	return CompleteTaskImpl{
		uow:     uow,
		updater: updater,
	}
}

// Execute marks the task identified by id as completed.
func (ct CompleteTaskImpl) Execute(ctx context.Context, ownerID string, id int64) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var task domain.Task
	err := ct.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		var err error
		task, err = ct.updater.Complete(spanCtx, uow, ownerID, id)
		return err
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	return task, nil
}

// InitCompleteTask initializes the CompleteTask use case and registers it in the dependency container.
type InitCompleteTask struct {
	Uow     domain.UnitOfWork `resolve:""`
	Updater TaskUpdater       `resolve:""`
}

// Initialize initializes the CompleteTaskImpl use case.
func (ict InitCompleteTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CompleteTask](NewCompleteTaskImpl(ict.Uow, ict.Updater))
	return ctx, nil
}
