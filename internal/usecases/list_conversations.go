package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

// ListConversations defines the interface for the ListConversations use case.
type ListConversations interface {
	// Query returns the owner's conversations ordered by last activity,
	// newest first.
	Query(ctx context.Context, ownerID string, limit int) ([]domain.Conversation, error)
}

// ListConversationsImpl is the implementation of the ListConversations use case.
type ListConversationsImpl struct {
	conversationRepo domain.ConversationRepository
}

// NewListConversationsImpl creates a new instance of ListConversationsImpl.
func NewListConversationsImpl(conversationRepo domain.ConversationRepository) ListConversationsImpl {
	return ListConversationsImpl{
		conversationRepo: conversationRepo,
	}
}

// Query returns the owner's conversations ordered by last activity, newest first.
func (lc ListConversationsImpl) Query(ctx context.Context, ownerID string, limit int) ([]domain.Conversation, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	conversations, err := lc.conversationRepo.ListConversations(spanCtx, ownerID, limit)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return conversations, nil
}

// InitListConversations initializes the ListConversations use case and registers it in the dependency container.
type InitListConversations struct {
	ConversationRepo domain.ConversationRepository `resolve:""`
}

// Initialize initializes the ListConversationsImpl use case.
func (init InitListConversations) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListConversations](NewListConversationsImpl(init.ConversationRepo))
	return ctx, nil
}
