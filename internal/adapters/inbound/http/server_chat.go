package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kaamkaaj/kaamkaaj/internal/usecases"
)

func (api KaamKaajServer) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	var opts []usecases.ChatTurnOption
	if req.ConversationID != nil {
		opts = append(opts, usecases.WithConversationID(*req.ConversationID))
	}

	result, err := api.ChatTurnUseCase.Execute(r.Context(), ownerIDFromContext(r.Context()), req.Message, opts...)
	if err != nil {
		api.Logger.Printf("Error executing chat turn: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toChatResp(result))
}
