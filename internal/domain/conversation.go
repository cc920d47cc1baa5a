package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxConversationTitleLen = 80

// Conversation groups the chat messages of one chat session.
type Conversation struct {
	ID        uuid.UUID
	OwnerID   string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GenerateAutoConversationTitle derives a conversation title from the first
// user message, truncated on a word boundary where possible.
func GenerateAutoConversationTitle(firstMessage string) string {
	title := strings.TrimSpace(firstMessage)
	if title == "" {
		return "New conversation"
	}
	if utf8.RuneCountInString(title) <= maxConversationTitleLen {
		return title
	}
	runes := []rune(title)
	cut := maxConversationTitleLen
	for i := cut; i > cut/2; i-- {
		if runes[i] == ' ' {
			cut = i
			break
		}
	}
	return strings.TrimSpace(string(runes[:cut])) + "…"
}

// ConversationRepository persists conversations, scoped to an owner.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, conversation Conversation) (Conversation, error)
	GetConversation(ctx context.Context, ownerID string, id uuid.UUID) (Conversation, bool, error)
	ListConversations(ctx context.Context, ownerID string, limit int) ([]Conversation, error)
	TouchConversation(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteConversation(ctx context.Context, ownerID string, id uuid.UUID) (bool, error)
}
