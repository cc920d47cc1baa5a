package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

var outboxEventFields = []string{
	"id",
	"event_type",
	"entity_id",
	"payload",
	"status",
	"retry_count",
	"max_retries",
	"last_error",
	"created_at",
	"updated_at",
}

// OutboxRepository stages domain events in Postgres for asynchronous relay.
type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

// NewOutboxRepository creates a new instance of OutboxRepository.
func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

func (op OutboxRepository) insertEvent(ctx context.Context, eventType domain.EventType, entityID string, payload []byte, createdAt any) error {
	_, err := op.sb.
		Insert("outbox_events").
		Columns(outboxEventFields...).
		Values(
			uuid.New(),
			string(eventType),
			entityID,
			payload,
			domain.OutboxStatus_Pending,
			0,
			domain.OutboxMaxRetries,
			"",
			createdAt,
			createdAt,
		).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

// CreateTaskEvent stages a task event.
func (op OutboxRepository) CreateTaskEvent(ctx context.Context, event domain.TaskEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	err = op.insertEvent(spanCtx, event.Type, fmt.Sprintf("%d", event.TaskID), payload, event.CreatedAt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// CreateChatEvent stages a chat message event.
func (op OutboxRepository) CreateChatEvent(ctx context.Context, event domain.ChatMessageEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal chat event: %w", err)
	}

	err = op.insertEvent(spanCtx, event.Type, event.MessageID.String(), payload, event.CreatedAt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// FetchPendingEvents retrieves a batch of pending outbox events from the database.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	rows, err := op.sb.
		Select(outboxEventFields...).
		From("outbox_events").
		Where(squirrel.Eq{"status": domain.OutboxStatus_Pending}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(ctx)

	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var (
			oe      domain.OutboxEvent
			payload []byte
		)
		err := rows.Scan(
			&oe.ID,
			&oe.EventType,
			&oe.EntityID,
			&payload,
			&oe.Status,
			&oe.RetryCount,
			&oe.MaxRetries,
			&oe.LastError,
			&oe.CreatedAt,
			&oe.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		oe.Payload = payload

		events = append(events, oe)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// UpdateEvent updates the status, retry count, and last error of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	_, err := op.sb.
		Update("outbox_events").
		Set("status", status).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}

// DeleteEvent deletes an outbox event from the database.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	_, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}

// InitOutboxRepository is a Symbiont initializer for OutboxRepository.
type InitOutboxRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the OutboxRepository in the dependency container.
func (i InitOutboxRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.OutboxRepository](NewOutboxRepository(i.DB))
	return ctx, nil
}
