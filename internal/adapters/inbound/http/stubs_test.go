package http

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/usecases"
	"github.com/stretchr/testify/require"
)

// Function-typed stubs implementing the use case interfaces, so each test
// can plug in just the behavior it needs.

type chatTurnFunc func(ctx context.Context, ownerID, userMessage string, opts ...usecases.ChatTurnOption) (usecases.ChatTurnResult, error)

func (f chatTurnFunc) Execute(ctx context.Context, ownerID, userMessage string, opts ...usecases.ChatTurnOption) (usecases.ChatTurnResult, error) {
	return f(ctx, ownerID, userMessage, opts...)
}

type createTaskFunc func(ctx context.Context, ownerID string, input usecases.NewTaskInput) (domain.Task, error)

func (f createTaskFunc) Execute(ctx context.Context, ownerID string, input usecases.NewTaskInput) (domain.Task, error) {
	return f(ctx, ownerID, input)
}

type listTasksFunc func(ctx context.Context, ownerID string, opts domain.ListTasksOptions) ([]domain.Task, error)

func (f listTasksFunc) Query(ctx context.Context, ownerID string, opts domain.ListTasksOptions) ([]domain.Task, error) {
	return f(ctx, ownerID, opts)
}

type getTaskFunc func(ctx context.Context, ownerID string, id int64) (domain.Task, error)

func (f getTaskFunc) Query(ctx context.Context, ownerID string, id int64) (domain.Task, error) {
	return f(ctx, ownerID, id)
}

type updateTaskFunc func(ctx context.Context, ownerID string, id int64, patch usecases.TaskPatch) (domain.Task, error)

func (f updateTaskFunc) Execute(ctx context.Context, ownerID string, id int64, patch usecases.TaskPatch) (domain.Task, error) {
	return f(ctx, ownerID, id, patch)
}

type completeTaskFunc func(ctx context.Context, ownerID string, id int64) (domain.Task, error)

func (f completeTaskFunc) Execute(ctx context.Context, ownerID string, id int64) (domain.Task, error) {
	return f(ctx, ownerID, id)
}

type deleteTaskFunc func(ctx context.Context, ownerID string, id int64) error

func (f deleteTaskFunc) Execute(ctx context.Context, ownerID string, id int64) error {
	return f(ctx, ownerID, id)
}

type listConversationsFunc func(ctx context.Context, ownerID string, limit int) ([]domain.Conversation, error)

func (f listConversationsFunc) Query(ctx context.Context, ownerID string, limit int) ([]domain.Conversation, error) {
	return f(ctx, ownerID, limit)
}

type listChatMessagesFunc func(ctx context.Context, ownerID string, conversationID uuid.UUID, limit int) ([]domain.ChatMessage, error)

func (f listChatMessagesFunc) Query(ctx context.Context, ownerID string, conversationID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	return f(ctx, ownerID, conversationID, limit)
}

type deleteConversationFunc func(ctx context.Context, ownerID string, conversationID uuid.UUID) error

func (f deleteConversationFunc) Execute(ctx context.Context, ownerID string, conversationID uuid.UUID) error {
	return f(ctx, ownerID, conversationID)
}

const testJWTSecret = "test-secret"

func newTestServer() *KaamKaajServer {
	return &KaamKaajServer{
		JWTSecret: testJWTSecret,
		Logger:    log.New(io.Discard, "", 0),
	}
}

func signTestToken(t *testing.T, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func serializeJSON(t *testing.T, payload any) []byte {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return body
}
