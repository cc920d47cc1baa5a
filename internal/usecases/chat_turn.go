package usecases

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

const (
	// Rephrasing must not drift from the templated facts.
	CHAT_TEMPERATURE = 0.2
	CHAT_MAX_TOKENS  = 400

	// HISTORY_WINDOW bounds how many stored messages a free-form completion
	// sees.
	HISTORY_WINDOW = 10
)

// skipWordRe matches the ways users decline an optional draft field.
var skipWordRe = regexp.MustCompile(`(?i)^\s*(?:skip|none|no|nahi|nahin|نہیں|کوئی نہیں)\s*[.!،۔]?\s*$`)

// cancelWordRe matches the ways users abandon a pending task draft.
var cancelWordRe = regexp.MustCompile(`(?i)^\s*(?:cancel|never\s*mind|forget\s+it|chhodo|rehne\s+do|چھوڑو|رہنے دو)\s*[.!،۔]?\s*$`)

// listFilterAllRe and listFilterCompletedRe widen the default pending-only
// task listing.
var (
	listFilterAllRe       = regexp.MustCompile(`(?i)\b(?:all|every|saare|sab)\b|سارے|سب`)
	listFilterCompletedRe = regexp.MustCompile(`(?i)\b(?:completed|done|finished|mukammal)\b|مکمل شدہ|ہو چکے`)
)

// renameRe captures the new title in an update utterance.
var renameRe = regexp.MustCompile(`(?i)\b(?:rename|retitle)\s+(?:it\s+)?(?:to\s+)?(.+)$|\bchange\b.*\bto\s+(.+)$`)

// ChatTurnParams holds optional parameters for ChatTurn execution.
type ChatTurnParams struct {
	ConversationID *uuid.UUID
}

// ChatTurnOption defines a functional option for configuring ChatTurnParams.
type ChatTurnOption func(*ChatTurnParams)

// WithConversationID continues an existing conversation instead of starting
// a new one.
func WithConversationID(conversationID uuid.UUID) ChatTurnOption {
	return func(params *ChatTurnParams) {
		params.ConversationID = &conversationID
	}
}

// ChatTurnResult is the outcome of one chat turn.
type ChatTurnResult struct {
	ConversationID uuid.UUID
	MessageID      uuid.UUID
	Reply          string
	Language       domain.Language
	Intent         domain.Intent
	ToolCalls      []domain.ToolCallRecord
}

// ChatTurn defines the interface for the ChatTurn use case.
type ChatTurn interface {
	// Execute interprets one user message, runs the task operations it asks
	// for and persists both sides of the exchange.
	Execute(ctx context.Context, ownerID, userMessage string, opts ...ChatTurnOption) (ChatTurnResult, error)
}

// ChatTurnImpl is the implementation of the ChatTurn use case.
//
// Interpretation is fully rule based: language detection, intent
// classification, slot extraction and task-reference resolution all run on
// the deterministic domain helpers. The LLM, when reachable, only rephrases
// the templated reply; when it is not, the template ships as-is.
type ChatTurnImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	creator      TaskCreator
	updater      TaskUpdater
	deleter      TaskDeleter
	resolver     TaskResolver
	llmClient    domain.CompletionClient
	llmModel     string
	logger       *log.Logger
	createUUID   func() uuid.UUID
}

// NewChatTurnImpl creates a new instance of ChatTurnImpl.
func NewChatTurnImpl(
	uow domain.UnitOfWork,
	timeProvider domain.CurrentTimeProvider,
	creator TaskCreator,
	updater TaskUpdater,
	deleter TaskDeleter,
	resolver TaskResolver,
	llmClient domain.CompletionClient,
	llmModel string,
	logger *log.Logger,
) ChatTurnImpl {
	return ChatTurnImpl{
		uow:          uow,
		timeProvider: timeProvider,
		creator:      creator,
		updater:      updater,
		deleter:      deleter,
		resolver:     resolver,
		llmClient:    llmClient,
		llmModel:     llmModel,
		logger:       logger,
		createUUID:   uuid.New,
	}
}

// turnOutcome is the in-memory result of interpreting one message, before
// persistence.
type turnOutcome struct {
	reply     string
	intent    domain.Intent
	toolCalls []domain.ToolCallRecord
	state     domain.ConversationState
}

// Execute interprets one user message, runs the task operations it asks for
// and persists both sides of the exchange.
func (ct ChatTurnImpl) Execute(ctx context.Context, ownerID, userMessage string, opts ...ChatTurnOption) (ChatTurnResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	text := strings.TrimSpace(userMessage)
	if text == "" {
		err := domain.NewValidationErr("message cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return ChatTurnResult{}, err
	}

	params := &ChatTurnParams{}
	for _, opt := range opts {
		opt(params)
	}

	lang := domain.DetectLanguage(text)

	var result ChatTurnResult
	err := ct.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		conversation, err := ct.getOrCreateConversation(spanCtx, uow, ownerID, params, text)
		if err != nil {
			return err
		}

		state := ct.loadState(spanCtx, uow, conversation.ID)

		outcome, err := ct.processTurn(spanCtx, uow, ownerID, text, lang, state)
		if err != nil {
			return err
		}

		if outcome.intent == domain.Intent_None {
			outcome.reply = ct.freeFormReply(spanCtx, uow, conversation.ID, lang, text, outcome.reply)
		} else {
			outcome.reply = ct.polishReply(spanCtx, lang, outcome.reply)
		}

		assistantMsgID, err := ct.persistTurn(spanCtx, uow, conversation, text, lang, outcome)
		if err != nil {
			return err
		}

		result = ChatTurnResult{
			ConversationID: conversation.ID,
			MessageID:      assistantMsgID,
			Reply:          outcome.reply,
			Language:       lang,
			Intent:         outcome.intent,
			ToolCalls:      outcome.toolCalls,
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChatTurnResult{}, err
	}

	RecordChatTurn(spanCtx, result.Intent, result.Language)
	return result, nil
}

func (ct ChatTurnImpl) getOrCreateConversation(ctx context.Context, uow domain.UnitOfWork, ownerID string, params *ChatTurnParams, firstMessage string) (domain.Conversation, error) {
	if params.ConversationID == nil {
		now := ct.timeProvider.Now()
		return uow.Conversation().CreateConversation(ctx, domain.Conversation{
			ID:        ct.createUUID(),
			OwnerID:   ownerID,
			Title:     domain.GenerateAutoConversationTitle(firstMessage),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	conversation, found, err := uow.Conversation().GetConversation(ctx, ownerID, *params.ConversationID)
	if err != nil {
		return domain.Conversation{}, err
	}
	if !found {
		return domain.Conversation{}, domain.NewNotFoundErr("conversation not found")
	}
	return conversation, nil
}

// loadState reloads the conversation state carried on the latest assistant
// message. A missing or undecodable state degrades to a fresh Idle state
// rather than failing the turn.
func (ct ChatTurnImpl) loadState(ctx context.Context, uow domain.UnitOfWork, conversationID uuid.UUID) domain.ConversationState {
	msg, found, err := uow.ChatMessage().GetLatestAssistantMessage(ctx, conversationID)
	if err != nil {
		ct.logger.Printf("loading state for conversation %s: %v", conversationID, err)
		return domain.NewConversationState()
	}
	if !found {
		return domain.NewConversationState()
	}

	meta, err := msg.DecodedMetadata()
	if err != nil {
		ct.logger.Printf("corrupt state on message %s, starting fresh: %v", msg.ID, err)
		return domain.NewConversationState()
	}
	if meta.State == nil {
		return domain.NewConversationState()
	}
	return *meta.State
}

func (ct ChatTurnImpl) processTurn(ctx context.Context, uow domain.UnitOfWork, ownerID, text string, lang domain.Language, state domain.ConversationState) (turnOutcome, error) {
	if state.IsAwaitingField() {
		return ct.handleDraftAnswer(ctx, uow, ownerID, text, lang, state)
	}

	intent := domain.ClassifyIntent(text, lang)
	switch intent {
	case domain.Intent_AddingTask:
		return ct.handleAdd(ctx, uow, ownerID, text, lang, state)
	case domain.Intent_ListingTasks:
		return ct.handleList(ctx, uow, ownerID, text, lang, state)
	case domain.Intent_CompletingTask:
		return ct.handleComplete(ctx, uow, ownerID, text, lang, state)
	case domain.Intent_DeletingTask:
		return ct.handleDelete(ctx, uow, ownerID, text, lang, state)
	case domain.Intent_UpdatingTask:
		return ct.handleUpdate(ctx, uow, ownerID, text, lang, state)
	default:
		return turnOutcome{
			reply:  replyFallback(lang),
			intent: domain.Intent_None,
			state:  state,
		}, nil
	}
}

func (ct ChatTurnImpl) handleAdd(ctx context.Context, uow domain.UnitOfWork, ownerID, text string, lang domain.Language, state domain.ConversationState) (turnOutcome, error) {
	now := ct.timeProvider.Now()
	draft := domain.ExtractSlots(text, lang, now, ct.timeProvider.Location())

	state.Phase = domain.ConversationPhase_AwaitingField
	state.Draft = &draft

	return ct.advanceDraft(ctx, uow, ownerID, lang, state)
}

// advanceDraft either asks for the next missing draft field or, when the
// draft is complete, creates the task.
func (ct ChatTurnImpl) advanceDraft(ctx context.Context, uow domain.UnitOfWork, ownerID string, lang domain.Language, state domain.ConversationState) (turnOutcome, error) {
	draft := state.Draft

	if field, missing := draft.NextMissingField(); missing {
		state.AwaitedField = field
		return turnOutcome{
			reply:  replyAskField(lang, field),
			intent: domain.Intent_AddingTask,
			state:  state,
		}, nil
	}

	task, err := ct.creator.Create(ctx, uow, ownerID, NewTaskInput{
		Title:    *draft.Title,
		DueDate:  draft.DueDate,
		Priority: draft.Priority,
		Category: draft.Category,
	})
	if err != nil {
		if _, ok := err.(*domain.ValidationErr); ok {
			// The collected draft can never become a valid task; drop it so
			// the conversation is not stuck re-asking the same field.
			state.ClearDraft()
		}
		return ct.toolFailure(lang, domain.Intent_AddingTask, "create_task", state, err)
	}

	state.ClearDraft()
	return turnOutcome{
		reply:  replyTaskCreated(lang, task),
		intent: domain.Intent_AddingTask,
		state:  state,
		toolCalls: []domain.ToolCallRecord{{
			Tool:    "create_task",
			Success: true,
			Result:  fmt.Sprintf("task %d created", task.ID),
		}},
	}, nil
}

func (ct ChatTurnImpl) handleDraftAnswer(ctx context.Context, uow domain.UnitOfWork, ownerID, text string, lang domain.Language, state domain.ConversationState) (turnOutcome, error) {
	if cancelWordRe.MatchString(text) {
		state.ClearDraft()
		return turnOutcome{
			reply:  replyFallback(lang),
			intent: domain.Intent_None,
			state:  state,
		}, nil
	}

	draft := state.Draft
	field := state.AwaitedField
	now := ct.timeProvider.Now()
	loc := ct.timeProvider.Location()

	if skipWordRe.MatchString(text) {
		if field == domain.DraftField_Title {
			// The title is the one field that cannot be skipped.
			return turnOutcome{
				reply:  replyAskField(lang, field),
				intent: domain.Intent_AddingTask,
				state:  state,
			}, nil
		}
		draft.Skip(field)
		return ct.advanceDraft(ctx, uow, ownerID, lang, state)
	}

	switch field {
	case domain.DraftField_Title:
		// The answer may name more than just the title.
		draft.Merge(domain.ExtractSlots(text, lang, now, loc))
		if draft.Title == nil {
			title := domain.CleanTitle(text)
			if title == "" {
				title = strings.TrimSpace(text)
			}
			draft.Title = &title
		}

	case domain.DraftField_DueDate:
		due, ok := domain.ExtractDueDate(text, now, loc)
		if !ok {
			return turnOutcome{
				reply:  replyDateNotUnderstood(lang),
				intent: domain.Intent_AddingTask,
				state:  state,
			}, nil
		}
		draft.DueDate = &due

	case domain.DraftField_Priority:
		priority, ok := domain.ExtractPriority(text)
		if !ok {
			return turnOutcome{
				reply:  replyPriorityNotUnderstood(lang),
				intent: domain.Intent_AddingTask,
				state:  state,
			}, nil
		}
		draft.Priority = &priority

	case domain.DraftField_Category:
		category, ok := domain.ExtractCategory(text)
		if !ok {
			category = domain.CleanTitle(text)
		}
		draft.Category = &category
	}

	return ct.advanceDraft(ctx, uow, ownerID, lang, state)
}

func (ct ChatTurnImpl) handleList(ctx context.Context, uow domain.UnitOfWork, ownerID, text string, lang domain.Language, state domain.ConversationState) (turnOutcome, error) {
	opts := domain.ListTasksOptions{Status: domain.TaskStatus_Pending}
	if listFilterCompletedRe.MatchString(text) {
		opts.Status = domain.TaskStatus_Completed
	} else if listFilterAllRe.MatchString(text) {
		opts.Status = ""
	}

	tasks, err := uow.Task().ListTasks(ctx, ownerID, opts)
	if err != nil {
		return turnOutcome{}, err
	}

	state.RecordListing(tasks, ct.timeProvider.Now())

	return turnOutcome{
		reply:  replyTaskList(lang, tasks),
		intent: domain.Intent_ListingTasks,
		state:  state,
		toolCalls: []domain.ToolCallRecord{{
			Tool:    "list_tasks",
			Success: true,
			Result:  fmt.Sprintf("%d tasks listed", len(tasks)),
		}},
	}, nil
}

func (ct ChatTurnImpl) handleComplete(ctx context.Context, uow domain.UnitOfWork, ownerID, text string, lang domain.Language, state domain.ConversationState) (turnOutcome, error) {
	ref, ok := domain.ExtractTaskReference(text)
	if !ok {
		return turnOutcome{
			reply:  replyWhichTask(lang),
			intent: domain.Intent_CompletingTask,
			state:  state,
		}, nil
	}

	task, err := ct.resolver.Resolve(ctx, uow, ownerID, ref, state)
	if err != nil {
		return ct.toolFailure(lang, domain.Intent_CompletingTask, "complete_task", state, err)
	}

	completed, err := ct.updater.Complete(ctx, uow, ownerID, task.ID)
	if err != nil {
		return ct.toolFailure(lang, domain.Intent_CompletingTask, "complete_task", state, err)
	}

	return turnOutcome{
		reply:  replyTaskCompleted(lang, completed),
		intent: domain.Intent_CompletingTask,
		state:  state,
		toolCalls: []domain.ToolCallRecord{{
			Tool:    "complete_task",
			Success: true,
			Result:  fmt.Sprintf("task %d completed", completed.ID),
		}},
	}, nil
}

func (ct ChatTurnImpl) handleDelete(ctx context.Context, uow domain.UnitOfWork, ownerID, text string, lang domain.Language, state domain.ConversationState) (turnOutcome, error) {
	ref, ok := domain.ExtractTaskReference(text)
	if !ok {
		return turnOutcome{
			reply:  replyWhichTask(lang),
			intent: domain.Intent_DeletingTask,
			state:  state,
		}, nil
	}

	task, err := ct.resolver.Resolve(ctx, uow, ownerID, ref, state)
	if err != nil {
		return ct.toolFailure(lang, domain.Intent_DeletingTask, "delete_task", state, err)
	}

	deleted, err := ct.deleter.Delete(ctx, uow, ownerID, task.ID)
	if err != nil {
		return ct.toolFailure(lang, domain.Intent_DeletingTask, "delete_task", state, err)
	}

	return turnOutcome{
		reply:  replyTaskDeleted(lang, deleted),
		intent: domain.Intent_DeletingTask,
		state:  state,
		toolCalls: []domain.ToolCallRecord{{
			Tool:    "delete_task",
			Success: true,
			Result:  fmt.Sprintf("task %d deleted", deleted.ID),
		}},
	}, nil
}

func (ct ChatTurnImpl) handleUpdate(ctx context.Context, uow domain.UnitOfWork, ownerID, text string, lang domain.Language, state domain.ConversationState) (turnOutcome, error) {
	ref, ok := domain.ExtractTaskReference(text)
	if !ok {
		return turnOutcome{
			reply:  replyWhichTask(lang),
			intent: domain.Intent_UpdatingTask,
			state:  state,
		}, nil
	}

	task, err := ct.resolver.Resolve(ctx, uow, ownerID, ref, state)
	if err != nil {
		return ct.toolFailure(lang, domain.Intent_UpdatingTask, "update_task", state, err)
	}

	patch := ct.extractPatch(text)
	if patch.IsEmpty() {
		return turnOutcome{
			reply:  replyNothingToUpdate(lang),
			intent: domain.Intent_UpdatingTask,
			state:  state,
		}, nil
	}

	updated, err := ct.updater.Update(ctx, uow, ownerID, task.ID, patch)
	if err != nil {
		return ct.toolFailure(lang, domain.Intent_UpdatingTask, "update_task", state, err)
	}

	return turnOutcome{
		reply:  replyTaskUpdated(lang, updated),
		intent: domain.Intent_UpdatingTask,
		state:  state,
		toolCalls: []domain.ToolCallRecord{{
			Tool:    "update_task",
			Success: true,
			Result:  fmt.Sprintf("task %d updated", updated.ID),
		}},
	}, nil
}

// extractPatch pulls the changes an update utterance asks for.
func (ct ChatTurnImpl) extractPatch(text string) TaskPatch {
	patch := TaskPatch{}

	if due, ok := domain.ExtractDueDate(text, ct.timeProvider.Now(), ct.timeProvider.Location()); ok {
		patch.DueDate = &due
	}
	if priority, ok := domain.ExtractPriority(text); ok {
		patch.Priority = &priority
	}
	if category, ok := domain.ExtractCategory(text); ok {
		patch.Category = &category
	}
	if m := renameRe.FindStringSubmatch(text); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if title := domain.CleanTitle(raw); title != "" {
			patch.Title = &title
		}
	}

	return patch
}

// toolFailure turns a failed task operation into a chat reply instead of an
// error, so the turn still completes and gets persisted. Errors the user can
// act on get a specific reply; anything unexpected becomes a generic retry
// message. Error returns stay reserved for transaction-level failures.
func (ct ChatTurnImpl) toolFailure(lang domain.Language, intent domain.Intent, tool string, state domain.ConversationState, err error) (turnOutcome, error) {
	var reply string
	switch err.(type) {
	case *domain.NotFoundErr:
		reply = replyTaskNotFound(lang)
	case *domain.ValidationErr:
		reply = replyValidationFailed(lang, err)
	default:
		ct.logger.Printf("%s failed: %v", tool, err)
		reply = replyTryAgain(lang)
	}
	return turnOutcome{
		reply:  reply,
		intent: intent,
		state:  state,
		toolCalls: []domain.ToolCallRecord{{
			Tool:    tool,
			Success: false,
			Error:   err.Error(),
		}},
	}, nil
}

// polishReply asks the LLM to rephrase the templated reply. Any failure
// falls back to the template.
func (ct ChatTurnImpl) polishReply(ctx context.Context, lang domain.Language, reply string) string {
	if ct.llmClient == nil || ct.llmModel == "" {
		return reply
	}

	result, err := ct.llmClient.Complete(ctx, domain.CompletionRequest{
		Model: ct.llmModel,
		Messages: []domain.CompletionMessage{
			{Role: domain.ChatRole_System, Content: polishSystemPrompt(lang)},
			{Role: domain.ChatRole_User, Content: reply},
		},
		Temperature: CHAT_TEMPERATURE,
		MaxTokens:   CHAT_MAX_TOKENS,
	})
	if err != nil {
		ct.logger.Printf("reply polishing failed, using template: %v", err)
		return reply
	}

	RecordLLMTokensUsed(ctx, result.Usage.PromptTokens, result.Usage.CompletionTokens)

	polished := strings.TrimSpace(result.Content)
	if polished == "" {
		return reply
	}
	return polished
}

// freeFormReply answers a message that maps to no task operation by handing
// the LLM the recent conversation window plus the new message. Any failure
// falls back to the canned reply.
func (ct ChatTurnImpl) freeFormReply(ctx context.Context, uow domain.UnitOfWork, conversationID uuid.UUID, lang domain.Language, text, fallback string) string {
	if ct.llmClient == nil || ct.llmModel == "" {
		return fallback
	}

	messages := []domain.CompletionMessage{
		{Role: domain.ChatRole_System, Content: freeFormSystemPrompt(lang)},
	}
	history, _, err := uow.ChatMessage().ListChatMessages(ctx, conversationID, HISTORY_WINDOW)
	if err != nil {
		ct.logger.Printf("loading history for conversation %s: %v", conversationID, err)
	}
	for _, msg := range history {
		messages = append(messages, domain.CompletionMessage{Role: msg.Role, Content: msg.Content})
	}
	// The new user message is not persisted yet at this point.
	messages = append(messages, domain.CompletionMessage{Role: domain.ChatRole_User, Content: text})

	result, err := ct.llmClient.Complete(ctx, domain.CompletionRequest{
		Model:       ct.llmModel,
		Messages:    messages,
		Temperature: CHAT_TEMPERATURE,
		MaxTokens:   CHAT_MAX_TOKENS,
	})
	if err != nil {
		ct.logger.Printf("free-form completion failed, using canned reply: %v", err)
		return fallback
	}

	RecordLLMTokensUsed(ctx, result.Usage.PromptTokens, result.Usage.CompletionTokens)

	reply := strings.TrimSpace(result.Content)
	if reply == "" {
		return fallback
	}
	return reply
}

// persistTurn stores the user and assistant messages, stages their outbox
// events and bumps the conversation's updated time.
func (ct ChatTurnImpl) persistTurn(ctx context.Context, uow domain.UnitOfWork, conversation domain.Conversation, text string, lang domain.Language, outcome turnOutcome) (uuid.UUID, error) {
	now := ct.timeProvider.Now()

	userMeta, err := domain.EncodeMetadata(domain.MessageMetadata{Language: lang})
	if err != nil {
		return uuid.Nil, err
	}
	userMsg := domain.ChatMessage{
		ID:             ct.createUUID(),
		ConversationID: conversation.ID,
		Role:           domain.ChatRole_User,
		Content:        text,
		Metadata:       userMeta,
		CreatedAt:      now,
	}

	assistantMeta, err := domain.EncodeMetadata(domain.MessageMetadata{
		Language:  lang,
		Model:     ct.llmModel,
		ToolCalls: outcome.toolCalls,
		State:     &outcome.state,
	})
	if err != nil {
		return uuid.Nil, err
	}
	assistantMsg := domain.ChatMessage{
		ID:             ct.createUUID(),
		ConversationID: conversation.ID,
		Role:           domain.ChatRole_Assistant,
		Content:        outcome.reply,
		Model:          ct.llmModel,
		Metadata:       assistantMeta,
		// The assistant message must sort after the user message it answers.
		CreatedAt: now.Add(time.Millisecond),
	}

	for _, msg := range []domain.ChatMessage{userMsg, assistantMsg} {
		stored, err := uow.ChatMessage().CreateChatMessage(ctx, msg)
		if err != nil {
			return uuid.Nil, err
		}
		err = uow.Outbox().CreateChatEvent(ctx, domain.ChatMessageEvent{
			Type:           domain.EventType_ChatMessageSent,
			MessageID:      stored.ID,
			ConversationID: stored.ConversationID,
			Role:           stored.Role,
			CreatedAt:      stored.CreatedAt,
		})
		if err != nil {
			return uuid.Nil, err
		}
	}

	if err := uow.Conversation().TouchConversation(ctx, conversation.ID, now); err != nil {
		return uuid.Nil, err
	}

	return assistantMsg.ID, nil
}

// InitChatTurn initializes the ChatTurn use case and registers it in the dependency container.
type InitChatTurn struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
	Creator     TaskCreator                `resolve:""`
	Updater     TaskUpdater                `resolve:""`
	Deleter     TaskDeleter                `resolve:""`
	Resolver    TaskResolver               `resolve:""`
	LLMClient   domain.CompletionClient    `resolve:""`
	Logger      *log.Logger                `resolve:""`
	Model       string                     `config:"LLM_CHAT_MODEL" default:"qwen/qwen3-30b-a3b-instruct"`
}

// Initialize initializes the ChatTurnImpl use case.
func (ict InitChatTurn) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ChatTurn](NewChatTurnImpl(
		ict.Uow,
		ict.TimeService,
		ict.Creator,
		ict.Updater,
		ict.Deleter,
		ict.Resolver,
		ict.LLMClient,
		ict.Model,
		ict.Logger,
	))
	return ctx, nil
}
