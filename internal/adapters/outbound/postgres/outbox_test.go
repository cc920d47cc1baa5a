package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
)

const (
	outboxColumnsCSV = "id, event_type, entity_id, payload, status, retry_count, max_retries, last_error, created_at, updated_at"
	outboxInsertSQL  = "INSERT INTO outbox_events (id,event_type,entity_id,payload,status,retry_count,max_retries,last_error,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)"
)

func TestOutboxRepository_CreateTaskEvent(t *testing.T) {
	fixedTime := time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC)

	event := domain.TaskEvent{
		Type:      domain.EventType_TaskCreated,
		TaskID:    42,
		OwnerID:   "user-1",
		CreatedAt: fixedTime,
	}

	tests := map[string]struct {
		expect    func(sqlmock.Sqlmock)
		expectErr bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(outboxInsertSQL).
					WithArgs(
						sqlmock.AnyArg(),
						"TASK.CREATED",
						"42",
						sqlmock.AnyArg(),
						domain.OutboxStatus_Pending,
						0,
						domain.OutboxMaxRetries,
						"",
						fixedTime,
						fixedTime,
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(outboxInsertSQL).
					WithArgs(
						sqlmock.AnyArg(),
						"TASK.CREATED",
						"42",
						sqlmock.AnyArg(),
						domain.OutboxStatus_Pending,
						0,
						domain.OutboxMaxRetries,
						"",
						fixedTime,
						fixedTime,
					).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewOutboxRepository(db)
			gotErr := repo.CreateTaskEvent(context.Background(), event)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOutboxRepository_CreateChatEvent(t *testing.T) {
	fixedTime := time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC)
	messageID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	event := domain.ChatMessageEvent{
		Type:           domain.EventType_ChatMessageSent,
		MessageID:      messageID,
		ConversationID: uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Role:           domain.ChatRole_User,
		CreatedAt:      fixedTime,
	}

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectExec(outboxInsertSQL).
		WithArgs(
			sqlmock.AnyArg(),
			"CHAT_MESSAGE.SENT",
			messageID.String(),
			sqlmock.AnyArg(),
			domain.OutboxStatus_Pending,
			0,
			domain.OutboxMaxRetries,
			"",
			fixedTime,
			fixedTime,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewOutboxRepository(db)
	assert.NoError(t, repo.CreateChatEvent(context.Background(), event))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_FetchPendingEvents(t *testing.T) {
	fixedTime := time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC)
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	querySQL := "SELECT " + outboxColumnsCSV + " FROM outbox_events WHERE status = $1 ORDER BY created_at ASC LIMIT 10 FOR UPDATE SKIP LOCKED"

	tests := map[string]struct {
		expect    func(sqlmock.Sqlmock)
		expected  int
		expectErr bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(outboxEventFields).
					AddRow(eventID, "TASK.CREATED", "42", []byte(`{"type":"TASK.CREATED"}`), domain.OutboxStatus_Pending, 0, 5, "", fixedTime, fixedTime)
				m.ExpectQuery(querySQL).
					WithArgs(domain.OutboxStatus_Pending).
					WillReturnRows(rows)
			},
			expected: 1,
		},
		"empty": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(querySQL).
					WithArgs(domain.OutboxStatus_Pending).
					WillReturnRows(sqlmock.NewRows(outboxEventFields))
			},
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(querySQL).
					WithArgs(domain.OutboxStatus_Pending).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewOutboxRepository(db)
			events, gotErr := repo.FetchPendingEvents(context.Background(), 10)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Len(t, events, tt.expected)
				if tt.expected > 0 {
					assert.Equal(t, eventID, events[0].ID)
					assert.Equal(t, domain.EventType_TaskCreated, events[0].EventType)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOutboxRepository_UpdateEvent(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectExec("UPDATE outbox_events SET status = $1, retry_count = $2, last_error = $3, updated_at = now() WHERE id = $4").
		WithArgs(domain.OutboxStatus_Failed, 5, "publish error", eventID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	assert.NoError(t, repo.UpdateEvent(context.Background(), eventID, domain.OutboxStatus_Failed, 5, "publish error"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_DeleteEvent(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectExec("DELETE FROM outbox_events WHERE id = $1").
		WithArgs(eventID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	assert.NoError(t, repo.DeleteEvent(context.Background(), eventID))

	assert.NoError(t, mock.ExpectationsWereMet())
}
