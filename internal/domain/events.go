package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType labels the domain events published through the outbox.
type EventType string

const (
	EventType_TaskCreated     EventType = "TASK.CREATED"
	EventType_TaskUpdated     EventType = "TASK.UPDATED"
	EventType_TaskCompleted   EventType = "TASK.COMPLETED"
	EventType_TaskDeleted     EventType = "TASK.DELETED"
	EventType_ChatMessageSent EventType = "CHAT_MESSAGE.SENT"
)

// TaskEvent is published whenever a task changes.
type TaskEvent struct {
	Type      EventType `json:"type"`
	TaskID    int64     `json:"task_id"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessageEvent is published whenever a chat message is stored.
type ChatMessageEvent struct {
	Type           EventType `json:"type"`
	MessageID      uuid.UUID `json:"message_id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Role           ChatRole  `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}
