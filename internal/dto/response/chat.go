package response

import (
	"time"

	"localserve/internal/data/entity"
)

type ChatMessageResponse struct {
	ID     string            `json:"id"`
	Sender entity.ChatSender `json:"sender"`
	Text   string            `json:"text"`
	SentAt time.Time         `json:"sent_at"`
}

type ConversationResponse struct {
	ProviderID   int                   `json:"provider_id"`
	ProviderName string                `json:"provider_name"`
	Messages     []ChatMessageResponse `json:"messages"`
}

func ConversationToResponse(c entity.Conversation) ConversationResponse {
	messages := make([]ChatMessageResponse, 0, len(c.Messages))
	for _, m := range c.Messages {
		messages = append(messages, ChatMessageResponse{
			ID:     m.ID.String(),
			Sender: m.Sender,
			Text:   m.Text,
			SentAt: m.SentAt,
		})
	}

	return ConversationResponse{
		ProviderID:   c.ProviderID,
		ProviderName: c.ProviderName,
		Messages:     messages,
	}
}
