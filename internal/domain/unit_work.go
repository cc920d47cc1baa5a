package domain

import "context"

// UnitOfWork runs repository operations inside a single database
// transaction. The repositories returned by the accessors are only valid
// within the Execute callback; the transaction commits when the callback
// returns nil and rolls back otherwise.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
	Task() TaskRepository
	ChatMessage() ChatMessageRepository
	Conversation() ConversationRepository
	Outbox() OutboxRepository
}
