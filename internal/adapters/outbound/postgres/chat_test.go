package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
)

const chatColumnsCSV = "id, conversation_id, chat_role, content, model, metadata, created_at"

func TestChatMessageRepository_CreateChatMessage(t *testing.T) {
	fixedTime := time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC)
	messageID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	conversationID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	metadata := json.RawMessage(`{"language":"en"}`)

	tests := map[string]struct {
		message   domain.ChatMessage
		expect    func(sqlmock.Sqlmock)
		expectErr bool
	}{
		"with-metadata": {
			message: domain.ChatMessage{
				ID:             messageID,
				ConversationID: conversationID,
				Role:           domain.ChatRole_Assistant,
				Content:        "Done.",
				Model:          "test-model",
				Metadata:       metadata,
				CreatedAt:      fixedTime,
			},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO chat_messages (id,conversation_id,chat_role,content,model,metadata,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)").
					WithArgs(messageID, conversationID, domain.ChatRole_Assistant, "Done.", "test-model", []byte(metadata), fixedTime).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"without-metadata": {
			message: domain.ChatMessage{
				ID:             messageID,
				ConversationID: conversationID,
				Role:           domain.ChatRole_User,
				Content:        "add a task",
				CreatedAt:      fixedTime,
			},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO chat_messages (id,conversation_id,chat_role,content,model,metadata,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)").
					WithArgs(messageID, conversationID, domain.ChatRole_User, "add a task", "", nil, fixedTime).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"database-error": {
			message: domain.ChatMessage{
				ID:             messageID,
				ConversationID: conversationID,
				Role:           domain.ChatRole_User,
				Content:        "add a task",
				CreatedAt:      fixedTime,
			},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO chat_messages (id,conversation_id,chat_role,content,model,metadata,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)").
					WithArgs(messageID, conversationID, domain.ChatRole_User, "add a task", "", nil, fixedTime).
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

			repo := NewChatMessageRepository(db)
			got, gotErr := repo.CreateChatMessage(context.Background(), tt.message)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.message, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChatMessageRepository_ListChatMessages(t *testing.T) {
	fixedTime := time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC)
	conversationID := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	t.Run("chronological-order", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		assert.NoError(t, err)
		defer db.Close() //nolint:errcheck

		rows := sqlmock.NewRows(chatFields).
			AddRow(uuid.New(), conversationID, domain.ChatRole_Assistant, "reply", "test-model", []byte(`{"language":"en"}`), fixedTime.Add(time.Second)).
			AddRow(uuid.New(), conversationID, domain.ChatRole_User, "hello", "", nil, fixedTime)
		mock.ExpectQuery("SELECT " + chatColumnsCSV + " FROM chat_messages WHERE conversation_id = $1 ORDER BY created_at DESC LIMIT 50").
			WithArgs(conversationID).
			WillReturnRows(rows)

		repo := NewChatMessageRepository(db)
		msgs, found, gotErr := repo.ListChatMessages(context.Background(), conversationID, 50)
		assert.NoError(t, gotErr)
		assert.True(t, found)
		assert.Len(t, msgs, 2)
		assert.Equal(t, "hello", msgs[0].Content)
		assert.Equal(t, "reply", msgs[1].Content)
		assert.Equal(t, json.RawMessage(`{"language":"en"}`), msgs[1].Metadata)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty-conversation", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		assert.NoError(t, err)
		defer db.Close() //nolint:errcheck

		mock.ExpectQuery("SELECT " + chatColumnsCSV + " FROM chat_messages WHERE conversation_id = $1 ORDER BY created_at DESC LIMIT 50").
			WithArgs(conversationID).
			WillReturnRows(sqlmock.NewRows(chatFields))

		repo := NewChatMessageRepository(db)
		msgs, found, gotErr := repo.ListChatMessages(context.Background(), conversationID, 50)
		assert.NoError(t, gotErr)
		assert.False(t, found)
		assert.Empty(t, msgs)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChatMessageRepository_GetLatestAssistantMessage(t *testing.T) {
	fixedTime := time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC)
	conversationID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	messageID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	querySQL := "SELECT " + chatColumnsCSV + " FROM chat_messages WHERE chat_role = $1 AND conversation_id = $2 ORDER BY created_at DESC LIMIT 1"

	tests := map[string]struct {
		expect       func(sqlmock.Sqlmock)
		expectedFind bool
		expectErr    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(chatFields).
					AddRow(messageID, conversationID, domain.ChatRole_Assistant, "reply", "test-model", nil, fixedTime)
				m.ExpectQuery(querySQL).
					WithArgs(domain.ChatRole_Assistant, conversationID).
					WillReturnRows(rows)
			},
			expectedFind: true,
		},
		"not-found": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(querySQL).
					WithArgs(domain.ChatRole_Assistant, conversationID).
					WillReturnError(sql.ErrNoRows)
			},
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(querySQL).
					WithArgs(domain.ChatRole_Assistant, conversationID).
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

			repo := NewChatMessageRepository(db)
			got, found, gotErr := repo.GetLatestAssistantMessage(context.Background(), conversationID)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedFind, found)
				if found {
					assert.Equal(t, messageID, got.ID)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
