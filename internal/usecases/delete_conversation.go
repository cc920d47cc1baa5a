package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

// DeleteConversation defines the interface for deleting a conversation use case.
type DeleteConversation interface {
	Execute(ctx context.Context, ownerID string, conversationID uuid.UUID) error
}

// DeleteConversationImpl implements the DeleteConversation use case.
type DeleteConversationImpl struct {
	uow domain.UnitOfWork
}

// NewDeleteConversationImpl creates a new DeleteConversationImpl instance.
func NewDeleteConversationImpl(uow domain.UnitOfWork) DeleteConversationImpl {
	return DeleteConversationImpl{
		uow: uow,
	}
}

// Execute deletes the conversation and its transcript. Messages go with the
// conversation via the schema's cascade.
func (dc DeleteConversationImpl) Execute(ctx context.Context, ownerID string, conversationID uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := dc.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		deleted, err := uow.Conversation().DeleteConversation(spanCtx, ownerID, conversationID)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NewNotFoundErr("conversation not found")
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// InitDeleteConversation is the initializer for the DeleteConversation use case.
type InitDeleteConversation struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize registers the DeleteConversation use case in the dependency container.
func (i InitDeleteConversation) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteConversation](NewDeleteConversationImpl(i.Uow))
	return ctx, nil
}
