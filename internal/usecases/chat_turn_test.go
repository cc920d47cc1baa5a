package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
)

func newChatTurnForTest(uow *fakeUnitOfWork, tp *fakeTimeProvider, llm *fakeCompletionClient) ChatTurnImpl {
	return NewChatTurnImpl(
		uow,
		tp,
		NewTaskCreatorImpl(tp),
		NewTaskUpdaterImpl(tp),
		NewTaskDeleterImpl(tp),
		NewTaskResolverImpl(),
		llm,
		"test-model",
		log.New(io.Discard, "", 0),
	)
}

func TestChatTurnImpl_Execute_MultiTurnAdd(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)} // Tuesday
	llm := &fakeCompletionClient{err: errors.New("llm down")}
	ct := newChatTurnForTest(uow, tp, llm)
	ctx := context.Background()

	res, err := ct.Execute(ctx, "user-1", "add a task to call the plumber")
	assert.NoError(t, err)
	assert.Equal(t, domain.Intent_AddingTask, res.Intent)
	assert.Equal(t, replyAskField(domain.Language_English, domain.DraftField_DueDate), res.Reply)
	conversationID := res.ConversationID

	tp.advance(time.Minute)
	res, err = ct.Execute(ctx, "user-1", "tomorrow", WithConversationID(conversationID))
	assert.NoError(t, err)
	assert.Equal(t, replyAskField(domain.Language_English, domain.DraftField_Priority), res.Reply)

	tp.advance(time.Minute)
	res, err = ct.Execute(ctx, "user-1", "high", WithConversationID(conversationID))
	assert.NoError(t, err)
	assert.Equal(t, replyAskField(domain.Language_English, domain.DraftField_Category), res.Reply)

	tp.advance(time.Minute)
	res, err = ct.Execute(ctx, "user-1", "skip", WithConversationID(conversationID))
	assert.NoError(t, err)
	assert.Contains(t, res.Reply, "call the plumber")
	assert.Equal(t, []domain.ToolCallRecord{{
		Tool:    "create_task",
		Success: true,
		Result:  "task 1 created",
	}}, res.ToolCalls)

	task := uow.task.tasks[1]
	assert.Equal(t, "call the plumber", task.Title)
	assert.Equal(t, "user-1", task.OwnerID)
	assert.Equal(t, domain.TaskStatus_Pending, task.Status)
	assert.Equal(t, domain.TaskPriority_High, task.Priority)
	assert.Equal(t, "", task.Category)
	assert.Equal(t, time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC), *task.DueDate)

	// 4 turns, a user and an assistant message each.
	assert.Len(t, uow.chat.messages, 8)
	assert.Len(t, uow.outbox.chatEvents, 8)
	assert.Equal(t, []domain.TaskEvent{{
		Type:      domain.EventType_TaskCreated,
		TaskID:    1,
		OwnerID:   "user-1",
		CreatedAt: tp.now,
	}}, uow.outbox.taskEvents)
}

func TestChatTurnImpl_Execute_SingleShotAddWithAllSlots(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{err: errors.New("llm down")}
	ct := newChatTurnForTest(uow, tp, llm)

	res, err := ct.Execute(context.Background(), "user-1",
		"add a task to buy groceries tomorrow with high priority")
	assert.NoError(t, err)

	// Title, due date, priority and an inferred shopping category arrived in
	// one utterance, so the task is created without further questions.
	assert.Contains(t, res.Reply, "buy groceries")
	task := uow.task.tasks[1]
	assert.Equal(t, "buy groceries", task.Title)
	assert.Equal(t, domain.TaskPriority_High, task.Priority)
	assert.Equal(t, "shopping", task.Category)
}

func TestChatTurnImpl_Execute_ListThenPositionalComplete(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{err: errors.New("llm down")}
	ct := newChatTurnForTest(uow, tp, llm)
	ctx := context.Background()

	seedTask(uow, 1, "user-1", "buy groceries", tp.now.Add(-2*time.Hour))
	seedTask(uow, 2, "user-1", "pay bills", tp.now.Add(-time.Hour))

	res, err := ct.Execute(ctx, "user-1", "show my tasks")
	assert.NoError(t, err)
	assert.Equal(t, domain.Intent_ListingTasks, res.Intent)
	// Newest first: position 1 is pay bills, position 2 is buy groceries.
	assert.Contains(t, res.Reply, "1. pay bills")
	assert.Contains(t, res.Reply, "2. buy groceries")
	conversationID := res.ConversationID

	tp.advance(time.Minute)
	res, err = ct.Execute(ctx, "user-1", "mark the second one as done", WithConversationID(conversationID))
	assert.NoError(t, err)
	assert.Equal(t, domain.Intent_CompletingTask, res.Intent)
	assert.Contains(t, res.Reply, "buy groceries")
	assert.Equal(t, domain.TaskStatus_Completed, uow.task.tasks[1].Status)
	assert.Equal(t, domain.TaskStatus_Pending, uow.task.tasks[2].Status)
}

func TestChatTurnImpl_Execute_NumberBeyondListingFallsBackToID(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{err: errors.New("llm down")}
	ct := newChatTurnForTest(uow, tp, llm)
	ctx := context.Background()

	seedTask(uow, 1, "user-1", "buy groceries", tp.now.Add(-2*time.Hour))
	seedTask(uow, 7, "user-1", "water the plants", tp.now.Add(-time.Hour))

	res, err := ct.Execute(ctx, "user-1", "show my tasks")
	assert.NoError(t, err)
	conversationID := res.ConversationID

	// 7 is beyond the two listed positions, so it resolves as a task id.
	tp.advance(time.Minute)
	res, err = ct.Execute(ctx, "user-1", "complete task 7", WithConversationID(conversationID))
	assert.NoError(t, err)
	assert.Contains(t, res.Reply, "water the plants")
	assert.Equal(t, domain.TaskStatus_Completed, uow.task.tasks[7].Status)
}

func TestChatTurnImpl_Execute_UnresolvedReferenceAnswersInsteadOfFailing(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{err: errors.New("llm down")}
	ct := newChatTurnForTest(uow, tp, llm)

	res, err := ct.Execute(context.Background(), "user-1", "complete task 99")
	assert.NoError(t, err)
	assert.Equal(t, replyTaskNotFound(domain.Language_English), res.Reply)
	assert.Len(t, res.ToolCalls, 1)
	assert.Equal(t, "complete_task", res.ToolCalls[0].Tool)
	assert.False(t, res.ToolCalls[0].Success)
}

func TestChatTurnImpl_Execute_UrduRoundTrip(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{err: errors.New("llm down")}
	ct := newChatTurnForTest(uow, tp, llm)
	ctx := context.Background()

	res, err := ct.Execute(ctx, "user-1", "نیا کام شامل کرو: دودھ خریدنا")
	assert.NoError(t, err)
	assert.Equal(t, domain.Language_Urdu, res.Language)
	assert.Equal(t, replyAskField(domain.Language_Urdu, domain.DraftField_DueDate), res.Reply)
	conversationID := res.ConversationID

	for _, answer := range []string{"نہیں", "نہیں", "نہیں"} {
		tp.advance(time.Minute)
		res, err = ct.Execute(ctx, "user-1", answer, WithConversationID(conversationID))
		assert.NoError(t, err)
	}
	assert.Contains(t, res.Reply, "دودھ خریدنا")
	assert.Equal(t, "دودھ خریدنا", uow.task.tasks[1].Title)

	tp.advance(time.Minute)
	res, err = ct.Execute(ctx, "user-1", "میرے کام دکھاؤ", WithConversationID(conversationID))
	assert.NoError(t, err)
	assert.Equal(t, domain.Intent_ListingTasks, res.Intent)
	assert.Contains(t, res.Reply, "1. دودھ خریدنا")

	tp.advance(time.Minute)
	res, err = ct.Execute(ctx, "user-1", "کام نمبر 1 مکمل کرو", WithConversationID(conversationID))
	assert.NoError(t, err)
	assert.Equal(t, domain.Intent_CompletingTask, res.Intent)
	assert.Equal(t, domain.TaskStatus_Completed, uow.task.tasks[1].Status)
}

func TestChatTurnImpl_Execute_CorruptStateDegradesToFresh(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{err: errors.New("llm down")}
	ct := newChatTurnForTest(uow, tp, llm)
	ctx := context.Background()

	res, err := ct.Execute(ctx, "user-1", "hello")
	assert.NoError(t, err)
	conversationID := res.ConversationID

	// Corrupt the stored assistant metadata.
	for i := range uow.chat.messages {
		if uow.chat.messages[i].Role == domain.ChatRole_Assistant {
			uow.chat.messages[i].Metadata = []byte(`{"state":`)
		}
	}

	tp.advance(time.Minute)
	res, err = ct.Execute(ctx, "user-1", "show my tasks", WithConversationID(conversationID))
	assert.NoError(t, err)
	assert.Equal(t, domain.Intent_ListingTasks, res.Intent)
}

func TestChatTurnImpl_Execute_CancelAbandonsDraft(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{err: errors.New("llm down")}
	ct := newChatTurnForTest(uow, tp, llm)
	ctx := context.Background()

	res, err := ct.Execute(ctx, "user-1", "add a task to call the plumber")
	assert.NoError(t, err)
	conversationID := res.ConversationID

	tp.advance(time.Minute)
	res, err = ct.Execute(ctx, "user-1", "cancel", WithConversationID(conversationID))
	assert.NoError(t, err)
	assert.Empty(t, uow.task.tasks)

	// The next message starts from an idle state again.
	tp.advance(time.Minute)
	res, err = ct.Execute(ctx, "user-1", "show my tasks", WithConversationID(conversationID))
	assert.NoError(t, err)
	assert.Equal(t, domain.Intent_ListingTasks, res.Intent)
}

func TestChatTurnImpl_Execute_PolishedReplyReplacesTemplate(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{content: "Sure thing, here is your list!"}
	ct := newChatTurnForTest(uow, tp, llm)

	res, err := ct.Execute(context.Background(), "user-1", "show my tasks")
	assert.NoError(t, err)
	assert.Equal(t, "Sure thing, here is your list!", res.Reply)
	assert.Len(t, llm.requests, 1)
	assert.Equal(t, "test-model", llm.requests[0].Model)

	// The polished text is what gets persisted.
	last := uow.chat.messages[len(uow.chat.messages)-1]
	assert.Equal(t, domain.ChatRole_Assistant, last.Role)
	assert.Equal(t, "Sure thing, here is your list!", last.Content)
}

func TestChatTurnImpl_Execute_Validation(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{err: errors.New("llm down")}
	ct := newChatTurnForTest(uow, tp, llm)
	ctx := context.Background()

	_, err := ct.Execute(ctx, "user-1", "   ")
	assert.IsType(t, &domain.ValidationErr{}, err)

	_, err = ct.Execute(ctx, "user-1", "hello", WithConversationID(uuid.New()))
	assert.IsType(t, &domain.NotFoundErr{}, err)
}

func TestChatTurnImpl_Execute_DeleteByTitle(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{err: errors.New("llm down")}
	ct := newChatTurnForTest(uow, tp, llm)

	seedTask(uow, 1, "user-1", "buy groceries", tp.now.Add(-2*time.Hour))
	seedTask(uow, 2, "user-1", "pay bills", tp.now.Add(-time.Hour))

	res, err := ct.Execute(context.Background(), "user-1", "delete buy groceries")
	assert.NoError(t, err)
	assert.Equal(t, domain.Intent_DeletingTask, res.Intent)
	assert.Contains(t, res.Reply, "buy groceries")
	assert.Equal(t, []domain.ToolCallRecord{{
		Tool:    "delete_task",
		Success: true,
		Result:  "task 1 deleted",
	}}, res.ToolCalls)

	_, gone := uow.task.tasks[1]
	assert.False(t, gone)
	assert.Contains(t, uow.task.tasks, int64(2))
	assert.Len(t, uow.chat.messages, 2)
	assert.Equal(t, []domain.TaskEvent{{
		Type:      domain.EventType_TaskDeleted,
		TaskID:    1,
		OwnerID:   "user-1",
		CreatedAt: tp.now,
	}}, uow.outbox.taskEvents)
}

func TestChatTurnImpl_Execute_InvalidDraftAnswersInsteadOfFailing(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{err: errors.New("llm down")}
	ct := newChatTurnForTest(uow, tp, llm)
	ctx := context.Background()

	res, err := ct.Execute(ctx, "user-1", "add a task to "+strings.Repeat("x", 201))
	assert.NoError(t, err)
	conversationID := res.ConversationID

	for _, answer := range []string{"skip", "skip"} {
		tp.advance(time.Minute)
		res, err = ct.Execute(ctx, "user-1", answer, WithConversationID(conversationID))
		assert.NoError(t, err)
	}

	// The last answer completes the draft, and creation fails validation.
	// That must come back as a chat reply, not as an error, with the whole
	// turn persisted.
	tp.advance(time.Minute)
	res, err = ct.Execute(ctx, "user-1", "skip", WithConversationID(conversationID))
	assert.NoError(t, err)
	assert.Contains(t, res.Reply, "title exceeds 200 characters")
	assert.Equal(t, []domain.ToolCallRecord{{
		Tool:    "create_task",
		Success: false,
		Error:   "title exceeds 200 characters",
	}}, res.ToolCalls)
	assert.Empty(t, uow.task.tasks)
	assert.Len(t, uow.chat.messages, 8)

	// The dead draft is dropped, so the conversation is usable again.
	tp.advance(time.Minute)
	res, err = ct.Execute(ctx, "user-1", "show my tasks", WithConversationID(conversationID))
	assert.NoError(t, err)
	assert.Equal(t, domain.Intent_ListingTasks, res.Intent)
}

func TestChatTurnImpl_Execute_RepoFailureAnswersWithRetry(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{err: errors.New("llm down")}
	ct := newChatTurnForTest(uow, tp, llm)

	uow.task.err = errors.New("connection reset")

	res, err := ct.Execute(context.Background(), "user-1", "complete task 1")
	assert.NoError(t, err)
	assert.Equal(t, replyTryAgain(domain.Language_English), res.Reply)
	assert.Equal(t, []domain.ToolCallRecord{{
		Tool:    "complete_task",
		Success: false,
		Error:   "connection reset",
	}}, res.ToolCalls)
	assert.Len(t, uow.chat.messages, 2)
}

func TestChatTurnImpl_Execute_FreeFormTurnSeesHistory(t *testing.T) {
	uow := newFakeUnitOfWork()
	tp := &fakeTimeProvider{now: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)}
	llm := &fakeCompletionClient{content: "Happy to help!"}
	ct := newChatTurnForTest(uow, tp, llm)
	ctx := context.Background()

	res, err := ct.Execute(ctx, "user-1", "hello there")
	assert.NoError(t, err)
	assert.Equal(t, domain.Intent_None, res.Intent)
	assert.Equal(t, "Happy to help!", res.Reply)
	conversationID := res.ConversationID

	assert.Len(t, llm.requests, 1)
	first := llm.requests[0].Messages
	assert.Len(t, first, 2)
	assert.Equal(t, domain.ChatRole_System, first[0].Role)
	assert.Equal(t, domain.CompletionMessage{Role: domain.ChatRole_User, Content: "hello there"}, first[1])

	// The second free-form turn carries the stored exchange as context.
	tp.advance(time.Minute)
	_, err = ct.Execute(ctx, "user-1", "anything I should know?", WithConversationID(conversationID))
	assert.NoError(t, err)

	assert.Len(t, llm.requests, 2)
	second := llm.requests[1].Messages
	assert.Len(t, second, 4)
	assert.Equal(t, domain.ChatRole_System, second[0].Role)
	assert.Equal(t, domain.CompletionMessage{Role: domain.ChatRole_User, Content: "hello there"}, second[1])
	assert.Equal(t, domain.CompletionMessage{Role: domain.ChatRole_Assistant, Content: "Happy to help!"}, second[2])
	assert.Equal(t, domain.CompletionMessage{Role: domain.ChatRole_User, Content: "anything I should know?"}, second[3])
}

func seedTask(uow *fakeUnitOfWork, id int64, ownerID, title string, createdAt time.Time) {
	uow.task.tasks[id] = domain.Task{
		ID:        id,
		OwnerID:   ownerID,
		Title:     title,
		Status:    domain.TaskStatus_Pending,
		Priority:  domain.TaskPriority_Medium,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if id > uow.task.nextID {
		uow.task.nextID = id
	}
}
