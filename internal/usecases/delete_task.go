package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

// DeleteTask defines the interface for the DeleteTask use case.
type DeleteTask interface {
	Execute(ctx context.Context, ownerID string, id int64) error
}

// DeleteTaskImpl is the implementation of the DeleteTask use case.
type DeleteTaskImpl struct {
	uow     domain.UnitOfWork
	deleter TaskDeleter
}

// NewDeleteTaskImpl creates a new instance of DeleteTaskImpl.
func NewDeleteTaskImpl(uow domain.UnitOfWork, deleter TaskDeleter) DeleteTaskImpl {
	return DeleteTaskImpl{
		uow:     uow,
		deleter: deleter,
	}
}

// Execute deletes the task identified by id.
func (dt DeleteTaskImpl) Execute(ctx context.Context, ownerID string, id int64) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := dt.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		_, err := dt.deleter.Delete(spanCtx, uow, ownerID, id)
		return err
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// InitDeleteTask initializes the DeleteTask use case and registers it in the dependency container.
type InitDeleteTask struct {
	Uow     domain.UnitOfWork `resolve:""`
	Deleter TaskDeleter       `resolve:""`
}

// Initialize initializes the DeleteTaskImpl use case.
func (idt InitDeleteTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteTask](NewDeleteTaskImpl(idt.Uow, idt.Deleter))
	return ctx, nil
}
