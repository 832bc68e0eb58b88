package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatModel "github.com/frontdeskhq/frontdesk/backend/internal/model/chat"
	chatService "github.com/frontdeskhq/frontdesk/backend/internal/service/chat"
	"github.com/frontdeskhq/frontdesk/backend/pkg/utils"
)

// Handler exposes the chat turn endpoint.
type Handler struct {
	turns *chatService.Service
}

// New creates the chat handler. A nil service marks the assistant as
// unavailable (model credentials not configured).
func New(turns *chatService.Service) *Handler {
	return &Handler{turns: turns}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChatTurn)
}

type chatRequest struct {
	Messages       []chatModel.TurnMessage `json:"messages"`
	BusinessID     string                  `json:"businessId"`
	ConversationID string                  `json:"conversationId,omitempty"`
}

// validate returns the list of problems with the payload, empty when
// the request is well-formed.
func (p chatRequest) validate() []string {
	var issues []string
	if p.BusinessID == "" {
		issues = append(issues, "businessId required")
	}
	if p.Messages == nil {
		issues = append(issues, "messages required")
	}
	for i, msg := range p.Messages {
		if !chatModel.ValidRole(msg.Role) {
			issues = append(issues, fmt.Sprintf("messages[%d].role must be one of user, assistant, system", i))
		}
	}
	return issues
}

type chatResponse struct {
	Reply             string `json:"reply"`
	ConversationID    string `json:"conversationId,omitempty"`
	RemainingMessages int    `json:"remainingMessages"`
}

func (h *Handler) handleChatTurn(w http.ResponseWriter, r *http.Request) {
	if h.turns == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "assistant unavailable")
		return
	}

	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Invalid request",
			"issues": []string{"malformed JSON body"},
		})
		return
	}

	if issues := payload.validate(); len(issues) > 0 {
		utils.RespondJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Invalid request",
			"issues": issues,
		})
		return
	}

	result, err := h.turns.ProcessTurn(r.Context(), sessionID(r), chatService.TurnRequest{
		Messages:       payload.Messages,
		BusinessID:     payload.BusinessID,
		ConversationID: payload.ConversationID,
	})
	if err != nil {
		h.respondTurnError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, chatResponse{
		Reply:             result.Reply,
		ConversationID:    result.ConversationID,
		RemainingMessages: result.RemainingMessages,
	})
}

func (h *Handler) respondTurnError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatService.ErrQuotaExceeded):
		utils.RespondJSON(w, http.StatusTooManyRequests, map[string]any{
			"error":             "Free message limit reached",
			"message":           "You've reached the limit for free messages. Please sign up to continue chatting.",
			"type":              "rate_limit",
			"remainingMessages": 0,
		})
	case errors.Is(err, chatService.ErrBusinessNotFound):
		utils.RespondError(w, http.StatusBadRequest, "Business not found")
	default:
		log.Printf("[chat] turn failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
