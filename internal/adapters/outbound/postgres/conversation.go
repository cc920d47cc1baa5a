package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

var conversationFields = []string{
	"id",
	"owner_id",
	"title",
	"created_at",
	"updated_at",
}

// ConversationRepository is a PostgreSQL implementation of domain.ConversationRepository.
type ConversationRepository struct {
	sb squirrel.StatementBuilderType
}

// NewConversationRepository creates a new instance of ConversationRepository.
func NewConversationRepository(br squirrel.BaseRunner) ConversationRepository {
	return ConversationRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

func scanConversation(row squirrel.RowScanner) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := row.Scan(
		&conversation.ID,
		&conversation.OwnerID,
		&conversation.Title,
		&conversation.CreatedAt,
		&conversation.UpdatedAt,
	)
	return conversation, err
}

// CreateConversation inserts a conversation.
func (r ConversationRepository) CreateConversation(ctx context.Context, conversation domain.Conversation) (domain.Conversation, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := r.sb.
		Insert("conversations").
		Columns(conversationFields...).
		Values(
			conversation.ID,
			conversation.OwnerID,
			conversation.Title,
			conversation.CreatedAt,
			conversation.UpdatedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Conversation{}, err
	}

	return conversation, nil
}

// GetConversation retrieves one of the owner's conversations by ID.
func (r ConversationRepository) GetConversation(ctx context.Context, ownerID string, id uuid.UUID) (domain.Conversation, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	conversation, err := scanConversation(r.sb.
		Select(conversationFields...).
		From("conversations").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Limit(1).
		QueryRowContext(spanCtx))
	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Conversation{}, false, nil
		}
		return domain.Conversation{}, false, err
	}

	return conversation, true, nil
}

// ListConversations returns the owner's conversations ordered by last
// activity, newest first.
func (r ConversationRepository) ListConversations(ctx context.Context, ownerID string, limit int) ([]domain.Conversation, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	qry := r.sb.
		Select(conversationFields...).
		From("conversations").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC", "created_at DESC")

	if limit > 0 {
		qry = qry.Limit(uint64(limit))
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	conversations := []domain.Conversation{}
	for rows.Next() {
		conversation, err := scanConversation(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		conversations = append(conversations, conversation)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return conversations, nil
}

// TouchConversation bumps a conversation's last-activity timestamp.
func (r ConversationRepository) TouchConversation(ctx context.Context, id uuid.UUID, at time.Time) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := r.sb.
		Update("conversations").
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// DeleteConversation deletes one of the owner's conversations. Messages go
// with it via the schema's cascade. It reports whether a row was removed.
func (r ConversationRepository) DeleteConversation(ctx context.Context, ownerID string, id uuid.UUID) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := r.sb.
		Delete("conversations").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	return affected > 0, nil
}

// InitConversationRepository is a Symbiont initializer for ConversationRepository.
type InitConversationRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ConversationRepository in the dependency container.
func (i InitConversationRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ConversationRepository](NewConversationRepository(i.DB))
	return ctx, nil
}
