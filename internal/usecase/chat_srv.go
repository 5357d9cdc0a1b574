package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"localserve/internal/data/entity"
	"localserve/internal/dto/request"
	"localserve/internal/dto/response"
	"localserve/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var cannedReplies = []string{
	"Thank you for your message! I'll get back to you shortly.",
	"I'm available for the service. When would you like to schedule?",
	"That sounds great! Let me know if you have any specific requirements.",
	"I'd be happy to help with that. What time works best for you?",
}

type ChatService interface {
	GetConversation(ctx context.Context, providerID int) (*response.ConversationResponse, error)
	SendMessage(ctx context.Context, providerID int, req *request.SendMessageRequest) (*response.ConversationResponse, error)
}

// chatService keeps one conversation per provider. Providers answer every
// message with a canned reply after a short pause.
type chatService struct {
	providers ProviderLookup
	rnd       RandomSource
	delay     time.Duration
	now       func() time.Time

	mu            sync.Mutex
	conversations map[int]*entity.Conversation

	log *zap.Logger
}

func NewChatService(providers ProviderLookup, rnd RandomSource, config *utils.Config, log *zap.Logger) ChatService {
	return &chatService{
		providers:     providers,
		rnd:           rnd,
		delay:         config.Chat.ReplyDelay,
		now:           time.Now,
		conversations: make(map[int]*entity.Conversation),
		log:           log.With(zap.String("service", "chat")),
	}
}

func (s *chatService) GetConversation(ctx context.Context, providerID int) (*response.ConversationResponse, error) {
	if _, err := s.open(ctx, providerID); err != nil {
		return nil, err
	}
	return s.snapshot(providerID), nil
}

// SendMessage records the user's text, waits out the reply delay and
// appends the provider's answer. A cancelled wait keeps the user message.
func (s *chatService) SendMessage(ctx context.Context, providerID int, req *request.SendMessageRequest) (*response.ConversationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Send message validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: message text is blank", ErrValidation)
	}

	conv, err := s.open(ctx, providerID)
	if err != nil {
		return nil, err
	}

	s.append(conv, entity.ChatSenderUser, text)
	s.log.Info("Chat message sent", zap.Int("provider_id", providerID))

	if err := utils.Wait(ctx, s.delay); err != nil {
		return nil, fmt.Errorf("wait for provider reply: %w", err)
	}

	reply := cannedReplies[pick(s.rnd, len(cannedReplies))]
	s.append(conv, entity.ChatSenderProvider, reply)

	return s.snapshot(providerID), nil
}

// open returns the conversation with providerID, greeting the user the
// first time.
func (s *chatService) open(ctx context.Context, providerID int) (*entity.Conversation, error) {
	s.mu.Lock()
	conv, ok := s.conversations[providerID]
	s.mu.Unlock()
	if ok {
		return conv, nil
	}

	provider, err := s.providers.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another request may have opened it meanwhile
	if conv, ok := s.conversations[providerID]; ok {
		return conv, nil
	}

	conv = &entity.Conversation{
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		Messages: []entity.ChatMessage{{
			ID:     uuid.New(),
			Sender: entity.ChatSenderProvider,
			Text:   fmt.Sprintf("Hello! I'm %s. How can I help you today?", provider.Name),
			SentAt: s.now(),
		}},
	}
	s.conversations[providerID] = conv
	return conv, nil
}

func (s *chatService) append(conv *entity.Conversation, sender entity.ChatSender, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv.Messages = append(conv.Messages, entity.ChatMessage{
		ID:     uuid.New(),
		Sender: sender,
		Text:   text,
		SentAt: s.now(),
	})
}

func (s *chatService) snapshot(providerID int) *response.ConversationResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := response.ConversationToResponse(*s.conversations[providerID])
	return &resp
}
