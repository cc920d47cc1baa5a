package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/kaamkaaj/kaamkaaj/internal/domain"
)

func conversationIDFromPath(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("conversationID"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid conversation id %q", r.PathValue("conversationID"))
	}
	return id, nil
}

func (api KaamKaajServer) handleListConversations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			respondError(w, toError(domain.NewValidationErr(fmt.Sprintf("invalid limit %q", rawLimit))))
			return
		}
		limit = parsed
	}

	conversations, err := api.ListConversationsUseCase.Query(r.Context(), ownerIDFromContext(r.Context()), limit)
	if err != nil {
		api.Logger.Printf("Error listing conversations: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListConversationsResp{Items: []Conversation{}}
	for _, c := range conversations {
		resp.Items = append(resp.Items, toConversation(c))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api KaamKaajServer) handleListChatMessages(w http.ResponseWriter, r *http.Request) {
	conversationID, err := conversationIDFromPath(r)
	if err != nil {
		respondError(w, toError(domain.NewValidationErr(err.Error())))
		return
	}

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			respondError(w, toError(domain.NewValidationErr(fmt.Sprintf("invalid limit %q", rawLimit))))
			return
		}
		limit = parsed
	}

	messages, err := api.ListChatMessagesUseCase.Query(r.Context(), ownerIDFromContext(r.Context()), conversationID, limit)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := ChatHistoryResp{
		ConversationID: conversationID,
		Messages:       []ChatMessage{},
	}
	for _, msg := range messages {
		resp.Messages = append(resp.Messages, toChatMessage(msg))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api KaamKaajServer) handleDeleteConversation(w http.ResponseWriter, r *http.Request) {
	conversationID, err := conversationIDFromPath(r)
	if err != nil {
		respondError(w, toError(domain.NewValidationErr(err.Error())))
		return
	}

	if err := api.DeleteConversationUseCase.Execute(r.Context(), ownerIDFromContext(r.Context()), conversationID); err != nil {
		api.Logger.Printf("Error deleting conversation %s: %v", conversationID, err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
