package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies who authored a chat message.
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
)

// ChatMessage is one message of a conversation transcript. Metadata is kept
// as raw JSON so an undecodable blob degrades a single turn instead of
// failing the whole transcript read.
type ChatMessage struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	Role           ChatRole
	Content        string
	Model          string
	Metadata       json.RawMessage
	CreatedAt      time.Time
}

// ToolCallRecord describes one task operation executed during a chat turn.
type ToolCallRecord struct {
	Tool    string `json:"tool"`
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MessageMetadata is the decoded form of ChatMessage.Metadata on assistant
// messages. State carries the conversation state into the next turn.
type MessageMetadata struct {
	Language  Language           `json:"language,omitempty"`
	Model     string             `json:"model,omitempty"`
	ToolCalls []ToolCallRecord   `json:"tool_calls,omitempty"`
	State     *ConversationState `json:"state,omitempty"`
}

// DecodedMetadata unmarshals the message metadata. An empty blob decodes to
// the zero metadata without error.
func (m ChatMessage) DecodedMetadata() (MessageMetadata, error) {
	var meta MessageMetadata
	if len(m.Metadata) == 0 {
		return meta, nil
	}
	if err := json.Unmarshal(m.Metadata, &meta); err != nil {
		return MessageMetadata{}, err
	}
	return meta, nil
}

// EncodeMetadata marshals metadata for storage on a chat message.
func EncodeMetadata(meta MessageMetadata) (json.RawMessage, error) {
	return json.Marshal(meta)
}

// ChatMessageRepository persists conversation transcripts.
type ChatMessageRepository interface {
	CreateChatMessage(ctx context.Context, message ChatMessage) (ChatMessage, error)
	// ListChatMessages returns up to limit messages of the conversation in
	// chronological order. The boolean reports whether the conversation has
	// any messages at all.
	ListChatMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]ChatMessage, bool, error)
	// GetLatestAssistantMessage returns the newest assistant message of the
	// conversation, used to reload the carried-over conversation state.
	GetLatestAssistantMessage(ctx context.Context, conversationID uuid.UUID) (ChatMessage, bool, error)
}
