package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus is the delivery state of an outbox event.
type OutboxStatus string

const (
	OutboxStatus_Pending OutboxStatus = "PENDING"
	OutboxStatus_Failed  OutboxStatus = "FAILED"
)

// OutboxMaxRetries is the delivery attempt budget before an event is parked
// as failed.
const OutboxMaxRetries = 5

// OutboxEvent is a domain event staged in the database inside the same
// transaction as the change it describes, and relayed to the broker
// asynchronously.
type OutboxEvent struct {
	ID         uuid.UUID
	EventType  EventType
	EntityID   string
	Payload    json.RawMessage
	Status     OutboxStatus
	RetryCount int
	MaxRetries int
	LastError  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OutboxRepository stages and drains outbox events.
type OutboxRepository interface {
	CreateTaskEvent(ctx context.Context, event TaskEvent) error
	CreateChatEvent(ctx context.Context, event ChatMessageEvent) error
	// FetchPendingEvents returns up to limit undelivered events, oldest
	// first, locking them against concurrent relay workers.
	FetchPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, status OutboxStatus, retryCount int, lastError string) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

// EventPublisher delivers a staged event to the message broker.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
