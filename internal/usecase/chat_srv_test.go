package usecase

import (
	"context"
	"testing"
	"time"

	"localserve/internal/data/entity"
	"localserve/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestChat(rnd RandomSource) ChatService {
	lookup := &stubProviderLookup{providers: map[int]entity.Provider{
		2: {ID: 2, Name: "Priya Sharma"},
	}}
	return NewChatService(lookup, rnd, testConfig(), zap.NewNop())
}

func TestChatService_GreetsOnOpen(t *testing.T) {
	svc := newTestChat(&seqRandom{values: []float64{0}})

	conv, err := svc.GetConversation(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, conv.ProviderID)
	assert.Equal(t, "Priya Sharma", conv.ProviderName)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, entity.ChatSenderProvider, conv.Messages[0].Sender)
	assert.Equal(t, "Hello! I'm Priya Sharma. How can I help you today?", conv.Messages[0].Text)

	// opening again keeps the same conversation
	again, err := svc.GetConversation(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, conv.Messages[0].ID, again.Messages[0].ID)
}

func TestChatService_SendMessageGetsCannedReply(t *testing.T) {
	svc := newTestChat(&seqRandom{values: []float64{0.6}})

	conv, err := svc.SendMessage(context.Background(), 2, &request.SendMessageRequest{Text: "  Need a plumber tomorrow "})
	require.NoError(t, err)

	require.Len(t, conv.Messages, 3)
	assert.Equal(t, entity.ChatSenderUser, conv.Messages[1].Sender)
	assert.Equal(t, "Need a plumber tomorrow", conv.Messages[1].Text)
	assert.Equal(t, entity.ChatSenderProvider, conv.Messages[2].Sender)
	assert.Equal(t, "That sounds great! Let me know if you have any specific requirements.", conv.Messages[2].Text)
	assert.False(t, conv.Messages[2].SentAt.Before(conv.Messages[1].SentAt))
}

func TestChatService_RejectsBlankText(t *testing.T) {
	svc := newTestChat(&seqRandom{values: []float64{0}})

	for _, text := range []string{"", "   \t"} {
		_, err := svc.SendMessage(context.Background(), 2, &request.SendMessageRequest{Text: text})
		assert.ErrorIs(t, err, ErrValidation, "%q", text)
	}

	conv, err := svc.GetConversation(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, conv.Messages, 1)
}

func TestChatService_UnknownProvider(t *testing.T) {
	svc := newTestChat(&seqRandom{values: []float64{0}})

	_, err := svc.SendMessage(context.Background(), 99, &request.SendMessageRequest{Text: "hi"})
	assert.ErrorIs(t, err, ErrProviderNotFound)

	_, err = svc.GetConversation(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestChatService_CancelledWaitKeepsUserMessage(t *testing.T) {
	svc := newTestChat(&seqRandom{values: []float64{0}})
	svc.(*chatService).delay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.SendMessage(ctx, 2, &request.SendMessageRequest{Text: "hello"})
	assert.ErrorIs(t, err, context.Canceled)

	conv, err := svc.GetConversation(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, "hello", conv.Messages[1].Text)
}
