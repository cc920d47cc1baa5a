package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

// UpdateTask defines the interface for the UpdateTask use case.
type UpdateTask interface {
	Execute(ctx context.Context, ownerID string, id int64, patch TaskPatch) (domain.Task, error)
}

// UpdateTaskImpl is the implementation of the UpdateTask use case.
type UpdateTaskImpl struct {
	uow     domain.UnitOfWork
	updater TaskUpdater
}

// NewUpdateTaskImpl creates a new instance of UpdateTaskImpl.
func NewUpdateTaskImpl(uow domain.UnitOfWork, updater TaskUpdater) UpdateTaskImpl {
	return UpdateTaskImpl{
		uow:     uow,
		updater: updater,
	}
}

// Execute applies the patch to the task identified by id.
func (ut UpdateTaskImpl) Execute(ctx context.Context, ownerID string, id int64, patch TaskPatch) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if patch.IsEmpty() {
		err := domain.NewValidationErr("nothing to update")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Task{}, err
	}

	var task domain.Task
	err := ut.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		var err error
		task, err = ut.updater.Update(spanCtx, uow, ownerID, id, patch)
		return err
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	return task, nil
}

// InitUpdateTask initializes the UpdateTask use case and registers it in the dependency container.
type InitUpdateTask struct {
	Uow     domain.UnitOfWork `resolve:""`
	Updater TaskUpdater       `resolve:""`
}

// Initialize initializes the UpdateTaskImpl use case.
func (iut InitUpdateTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateTask](NewUpdateTaskImpl(iut.Uow, iut.Updater))
	return ctx, nil
}
