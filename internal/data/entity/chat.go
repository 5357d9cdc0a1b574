package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSender string

const (
	ChatSenderUser     ChatSender = "user"
	ChatSenderProvider ChatSender = "provider"
)

type ChatMessage struct {
	ID     uuid.UUID  `json:"id"`
	Sender ChatSender `json:"sender"`
	Text   string     `json:"text"`
	SentAt time.Time  `json:"sentAt"`
}

// Conversation is the chat with one provider. It always opens with the
// provider's greeting.
type Conversation struct {
	ProviderID   int           `json:"providerId"`
	ProviderName string        `json:"providerName"`
	Messages     []ChatMessage `json:"messages"`
}
