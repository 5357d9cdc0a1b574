package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"localserve/internal/dto/request"
	"localserve/internal/usecase"
	"localserve/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ChatHandler struct {
	service usecase.ChatService
	log     *zap.Logger
}

func NewChatHandler(service usecase.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With(zap.String("handler", "chat")),
	}
}

// GetConversation handles GET /api/providers/{id}/messages
func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	providerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid provider ID", nil)
		return
	}

	conversation, err := h.service.GetConversation(r.Context(), providerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get conversation")
		return
	}

	utils.ResponseSuccess(w, "success", conversation)
}

// SendMessage handles POST /api/providers/{id}/messages. It answers once the
// provider has replied.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	providerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid provider ID", nil)
		return
	}

	var req request.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	conversation, err := h.service.SendMessage(r.Context(), providerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "send message")
		return
	}

	utils.ResponseCreated(w, "Message sent", conversation)
}
