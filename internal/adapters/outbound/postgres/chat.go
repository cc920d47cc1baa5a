package postgres

import (
	"context"
	"database/sql"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

var chatFields = []string{
	"id",
	"conversation_id",
	"chat_role",
	"content",
	"model",
	"metadata",
	"created_at",
}

// ChatMessageRepository persists chat messages in Postgres.
type ChatMessageRepository struct {
	sb squirrel.StatementBuilderType
}

// NewChatMessageRepository creates a new ChatMessageRepository.
func NewChatMessageRepository(br squirrel.BaseRunner) ChatMessageRepository {
	return ChatMessageRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

func scanChatMessage(row squirrel.RowScanner) (domain.ChatMessage, error) {
	var (
		m        domain.ChatMessage
		metadata []byte
	)
	err := row.Scan(
		&m.ID,
		&m.ConversationID,
		&m.Role,
		&m.Content,
		&m.Model,
		&metadata,
		&m.CreatedAt,
	)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	if len(metadata) > 0 {
		m.Metadata = metadata
	}
	return m, nil
}

// CreateChatMessage persists one chat message.
func (r ChatMessageRepository) CreateChatMessage(ctx context.Context, message domain.ChatMessage) (domain.ChatMessage, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var metadata any
	if len(message.Metadata) > 0 {
		metadata = []byte(message.Metadata)
	}

	_, err := r.sb.
		Insert("chat_messages").
		Columns(chatFields...).
		Values(
			message.ID,
			message.ConversationID,
			message.Role,
			message.Content,
			message.Model,
			metadata,
			message.CreatedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ChatMessage{}, err
	}

	return message, nil
}

// ListChatMessages retrieves messages of a conversation in chronological
// order. If limit > 0, the latest N messages are returned; the boolean
// reports whether the conversation has any messages at all.
func (r ChatMessageRepository) ListChatMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.ChatMessage, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	qry := r.sb.
		Select(chatFields...).
		From("chat_messages").
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("created_at DESC")

	if limit > 0 {
		qry = qry.Limit(uint64(limit))
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	defer rows.Close() //nolint:errcheck

	var msgs []domain.ChatMessage
	for rows.Next() {
		m, err := scanChatMessage(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, false, err
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	// Currently ordered DESC; reverse to ASC for chronological order
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})

	return msgs, len(msgs) > 0, nil
}

// GetLatestAssistantMessage returns the newest assistant message of the
// conversation.
func (r ChatMessageRepository) GetLatestAssistantMessage(ctx context.Context, conversationID uuid.UUID) (domain.ChatMessage, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	m, err := scanChatMessage(r.sb.
		Select(chatFields...).
		From("chat_messages").
		Where(squirrel.Eq{"conversation_id": conversationID, "chat_role": domain.ChatRole_Assistant}).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(spanCtx))
	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.ChatMessage{}, false, nil
		}
		return domain.ChatMessage{}, false, err
	}

	return m, true, nil
}

// InitChatMessageRepository is a Symbiont initializer for ChatMessageRepository.
type InitChatMessageRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ChatMessageRepository in the dependency container.
func (r InitChatMessageRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ChatMessageRepository](NewChatMessageRepository(r.DB))
	return ctx, nil
}
