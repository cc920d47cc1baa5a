package http

import (
	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/usecases"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = e.Error()
	case *domain.NotFoundErr:
		errResp.Error.Code = ErrorCode_NotFound
		errResp.Error.Message = e.Error()
	case *domain.UnavailableErr:
		errResp.Error.Code = ErrorCode_Unavailable
		errResp.Error.Message = e.Error()
	default:
		errResp.Error.Code = ErrorCode_InternalError
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toTask(t domain.Task) Task {
	return Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Category:    t.Category,
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toChatMessage(msg domain.ChatMessage) ChatMessage {
	return ChatMessage{
		ID:        msg.ID,
		Role:      string(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func toConversation(c domain.Conversation) Conversation {
	return Conversation{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toChatResp(result usecases.ChatTurnResult) ChatResp {
	resp := ChatResp{
		ConversationID: result.ConversationID,
		MessageID:      result.MessageID,
		Reply:          result.Reply,
		Language:       string(result.Language),
		Intent:         string(result.Intent),
	}
	for _, tc := range result.ToolCalls {
		resp.ToolCalls = append(resp.ToolCalls, ToolCall{
			Tool:    tc.Tool,
			Success: tc.Success,
			Result:  tc.Result,
			Error:   tc.Error,
		})
	}
	return resp
}
