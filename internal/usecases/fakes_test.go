package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
)

// fakes_test.go holds in-memory fakes of the domain ports, shared by the
// use case tests.

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time           { return f.now }
func (f *fakeTimeProvider) Location() *time.Location { return time.UTC }

func (f *fakeTimeProvider) advance(d time.Duration) { f.now = f.now.Add(d) }

type fakeTaskRepo struct {
	nextID int64
	tasks  map[int64]domain.Task
	err    error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[int64]domain.Task{}}
}

func (f *fakeTaskRepo) CreateTask(_ context.Context, task domain.Task) (domain.Task, error) {
	if f.err != nil {
		return domain.Task{}, f.err
	}
	f.nextID++
	task.ID = f.nextID
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeTaskRepo) GetTask(_ context.Context, ownerID string, id int64) (domain.Task, bool, error) {
	if f.err != nil {
		return domain.Task{}, false, f.err
	}
	task, ok := f.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return domain.Task{}, false, nil
	}
	return task, true, nil
}

func (f *fakeTaskRepo) ListTasks(_ context.Context, ownerID string, opts domain.ListTasksOptions) ([]domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Task
	for _, task := range f.tasks {
		if task.OwnerID != ownerID {
			continue
		}
		if opts.Status != "" && task.Status != opts.Status {
			continue
		}
		if opts.Category != "" && task.Category != opts.Category {
			continue
		}
		if opts.DueBefore != nil && (task.DueDate == nil || !task.DueDate.Before(*opts.DueBefore)) {
			continue
		}
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit := opts.EffectiveLimit(); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTaskRepo) UpdateTask(_ context.Context, task domain.Task) (domain.Task, error) {
	if f.err != nil {
		return domain.Task{}, f.err
	}
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeTaskRepo) DeleteTask(_ context.Context, ownerID string, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	task, ok := f.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return false, nil
	}
	delete(f.tasks, id)
	return true, nil
}

type fakeChatRepo struct {
	messages []domain.ChatMessage
	err      error
}

func (f *fakeChatRepo) CreateChatMessage(_ context.Context, message domain.ChatMessage) (domain.ChatMessage, error) {
	if f.err != nil {
		return domain.ChatMessage{}, f.err
	}
	f.messages = append(f.messages, message)
	return message, nil
}

func (f *fakeChatRepo) ListChatMessages(_ context.Context, conversationID uuid.UUID, limit int) ([]domain.ChatMessage, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	var out []domain.ChatMessage
	for _, msg := range f.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	// Latest N, in chronological order, like the real repository.
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, len(out) > 0, nil
}

func (f *fakeChatRepo) GetLatestAssistantMessage(_ context.Context, conversationID uuid.UUID) (domain.ChatMessage, bool, error) {
	if f.err != nil {
		return domain.ChatMessage{}, false, f.err
	}
	var latest *domain.ChatMessage
	for i := range f.messages {
		msg := &f.messages[i]
		if msg.ConversationID != conversationID || msg.Role != domain.ChatRole_Assistant {
			continue
		}
		if latest == nil || msg.CreatedAt.After(latest.CreatedAt) {
			latest = msg
		}
	}
	if latest == nil {
		return domain.ChatMessage{}, false, nil
	}
	return *latest, true, nil
}

type fakeConversationRepo struct {
	conversations map[uuid.UUID]domain.Conversation
	err           error
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{conversations: map[uuid.UUID]domain.Conversation{}}
}

func (f *fakeConversationRepo) CreateConversation(_ context.Context, conversation domain.Conversation) (domain.Conversation, error) {
	if f.err != nil {
		return domain.Conversation{}, f.err
	}
	f.conversations[conversation.ID] = conversation
	return conversation, nil
}

func (f *fakeConversationRepo) GetConversation(_ context.Context, ownerID string, id uuid.UUID) (domain.Conversation, bool, error) {
	if f.err != nil {
		return domain.Conversation{}, false, f.err
	}
	conversation, ok := f.conversations[id]
	if !ok || conversation.OwnerID != ownerID {
		return domain.Conversation{}, false, nil
	}
	return conversation, true, nil
}

func (f *fakeConversationRepo) ListConversations(_ context.Context, ownerID string, limit int) ([]domain.Conversation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Conversation
	for _, conversation := range f.conversations {
		if conversation.OwnerID == ownerID {
			out = append(out, conversation)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeConversationRepo) TouchConversation(_ context.Context, id uuid.UUID, at time.Time) error {
	if f.err != nil {
		return f.err
	}
	conversation, ok := f.conversations[id]
	if ok {
		conversation.UpdatedAt = at
		f.conversations[id] = conversation
	}
	return nil
}

func (f *fakeConversationRepo) DeleteConversation(_ context.Context, ownerID string, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	conversation, ok := f.conversations[id]
	if !ok || conversation.OwnerID != ownerID {
		return false, nil
	}
	delete(f.conversations, id)
	return true, nil
}

type fakeOutboxRepo struct {
	taskEvents []domain.TaskEvent
	chatEvents []domain.ChatMessageEvent
	pending    []domain.OutboxEvent
	updates    []domain.OutboxStatus
	deleted    []uuid.UUID
	err        error
}

func (f *fakeOutboxRepo) CreateTaskEvent(_ context.Context, event domain.TaskEvent) error {
	if f.err != nil {
		return f.err
	}
	f.taskEvents = append(f.taskEvents, event)
	return nil
}

func (f *fakeOutboxRepo) CreateChatEvent(_ context.Context, event domain.ChatMessageEvent) error {
	if f.err != nil {
		return f.err
	}
	f.chatEvents = append(f.chatEvents, event)
	return nil
}

func (f *fakeOutboxRepo) FetchPendingEvents(_ context.Context, limit int) ([]domain.OutboxEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeOutboxRepo) UpdateEvent(_ context.Context, id uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	f.updates = append(f.updates, status)
	for i := range f.pending {
		if f.pending[i].ID == id {
			f.pending[i].Status = status
			f.pending[i].RetryCount = retryCount
			f.pending[i].LastError = lastError
		}
	}
	return nil
}

func (f *fakeOutboxRepo) DeleteEvent(_ context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUnitOfWork struct {
	task   *fakeTaskRepo
	chat   *fakeChatRepo
	conv   *fakeConversationRepo
	outbox *fakeOutboxRepo
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		task:   newFakeTaskRepo(),
		chat:   &fakeChatRepo{},
		conv:   newFakeConversationRepo(),
		outbox: &fakeOutboxRepo{},
	}
}

func (f *fakeUnitOfWork) Execute(_ context.Context, fn func(uow domain.UnitOfWork) error) error {
	return fn(f)
}

func (f *fakeUnitOfWork) Task() domain.TaskRepository                 { return f.task }
func (f *fakeUnitOfWork) ChatMessage() domain.ChatMessageRepository   { return f.chat }
func (f *fakeUnitOfWork) Conversation() domain.ConversationRepository { return f.conv }
func (f *fakeUnitOfWork) Outbox() domain.OutboxRepository             { return f.outbox }

type fakeCompletionClient struct {
	err      error
	content  string
	requests []domain.CompletionRequest
}

func (f *fakeCompletionClient) Complete(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return domain.CompletionResult{}, f.err
	}
	return domain.CompletionResult{
		Content: f.content,
		Model:   req.Model,
		Usage:   domain.CompletionUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}, nil
}

type fakePublisher struct {
	err       error
	published []domain.OutboxEvent
}

func (f *fakePublisher) PublishEvent(_ context.Context, event domain.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, event)
	return nil
}
