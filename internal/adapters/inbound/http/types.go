package http

import (
	"time"

	"github.com/google/uuid"
)

// ErrorCode classifies API errors in responses.
type ErrorCode string

const (
	ErrorCode_BadRequest    ErrorCode = "BAD_REQUEST"
	ErrorCode_Unauthorized  ErrorCode = "UNAUTHORIZED"
	ErrorCode_NotFound      ErrorCode = "NOT_FOUND"
	ErrorCode_Unavailable   ErrorCode = "UNAVAILABLE"
	ErrorCode_InternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorResp is the error envelope returned by every endpoint.
type ErrorResp struct {
	Error Error `json:"error"`
}

// Error carries the machine-readable code and human-readable message.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Task is the wire representation of a task.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateTaskReq is the request body for creating a task.
type CreateTaskReq struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Category    *string    `json:"category,omitempty"`
}

// UpdateTaskReq is the request body for updating a task. Omitted fields are
// left unchanged; ClearDueDate removes the due date.
type UpdateTaskReq struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ClearDueDate bool       `json:"clear_due_date,omitempty"`
	Priority     *string    `json:"priority,omitempty"`
	Category     *string    `json:"category,omitempty"`
}

// ListTasksResp is the response body for task listings.
type ListTasksResp struct {
	Items []Task `json:"items"`
}

// ChatReq is the request body for one chat turn.
type ChatReq struct {
	Message        string     `json:"message"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
}

// ToolCall reports one task operation executed during a chat turn.
type ToolCall struct {
	Tool    string `json:"tool"`
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ChatResp is the response body for one chat turn.
type ChatResp struct {
	ConversationID uuid.UUID  `json:"conversation_id"`
	MessageID      uuid.UUID  `json:"message_id"`
	Reply          string     `json:"reply"`
	Language       string     `json:"language"`
	Intent         string     `json:"intent"`
	ToolCalls      []ToolCall `json:"tool_calls,omitempty"`
}

// ChatMessage is the wire representation of a stored chat message.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatHistoryResp is the response body for a conversation transcript.
type ChatHistoryResp struct {
	ConversationID uuid.UUID     `json:"conversation_id"`
	Messages       []ChatMessage `json:"messages"`
}

// Conversation is the wire representation of a conversation.
type Conversation struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListConversationsResp is the response body for conversation listings.
type ListConversationsResp struct {
	Items []Conversation `json:"items"`
}
