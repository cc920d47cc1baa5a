package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

// ListChatMessages defines the interface for the ListChatMessages use case.
type ListChatMessages interface {
	// Query returns up to limit messages of the conversation in
	// chronological order.
	Query(ctx context.Context, ownerID string, conversationID uuid.UUID, limit int) ([]domain.ChatMessage, error)
}

// ListChatMessagesImpl is the implementation of the ListChatMessages use case.
type ListChatMessagesImpl struct {
	chatMessageRepo  domain.ChatMessageRepository
	conversationRepo domain.ConversationRepository
}

// NewListChatMessagesImpl creates a new instance of ListChatMessagesImpl.
func NewListChatMessagesImpl(chatMessageRepo domain.ChatMessageRepository, conversationRepo domain.ConversationRepository) ListChatMessagesImpl {
	return ListChatMessagesImpl{
		chatMessageRepo:  chatMessageRepo,
		conversationRepo: conversationRepo,
	}
}

// Query retrieves the conversation transcript. The conversation must belong
// to the owner.
func (lcm ListChatMessagesImpl) Query(ctx context.Context, ownerID string, conversationID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, found, err := lcm.conversationRepo.GetConversation(spanCtx, ownerID, conversationID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !found {
		err := domain.NewNotFoundErr("conversation not found")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	messages, _, err := lcm.chatMessageRepo.ListChatMessages(spanCtx, conversationID, limit)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return messages, nil
}

// InitListChatMessages is the initializer for the ListChatMessages use case.
type InitListChatMessages struct {
	ChatMessageRepo  domain.ChatMessageRepository  `resolve:""`
	ConversationRepo domain.ConversationRepository `resolve:""`
}

// Initialize registers the ListChatMessages use case in the dependency container.
func (i InitListChatMessages) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListChatMessages](NewListChatMessagesImpl(i.ChatMessageRepo, i.ConversationRepo))
	return ctx, nil
}
