package impl

import (
	"context"
	"testing"
	"time"

	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
	"beautymap/internal/domain/service"
	mockRepo "beautymap/internal/mocks/repository"
	mockService "beautymap/internal/mocks/service"
	"beautymap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageServiceFixtures struct {
	service   usecase.MessageUsecase
	repos     *repoMocks
	publisher *mockService.MockEventPublisher
	push      *mockService.MockPushService
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoMocks(t)
	events, publisher, push := newTestDispatcher(t)
	expectTx(txManager, repos)

	return messageServiceFixtures{
		service:   NewMessageService(MessageServiceParams{TxManager: txManager, Events: events, Logger: discardLogger()}),
		repos:     repos,
		publisher: publisher,
		push:      push,
	}
}

func TestMessageService_SendMessage_NotifiesReceiver(t *testing.T) {
	fx := createTestMessageService(t)
	ctx := context.Background()

	fx.repos.profiles.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Profile{ID: 1, Username: "kim"}, nil)
	fx.repos.profiles.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Profile{ID: 2}, nil)
	fx.repos.messages.EXPECT().
		Create(ctx, mock.MatchedBy(func(m *entity.Message) bool {
			return m.SenderID == 1 && m.ReceiverID == 2 && m.Content == "Hi there" && !m.Read
		})).
		Run(func(_ context.Context, m *entity.Message) { m.ID = 100 }).
		Return(nil)
	fx.repos.notifications.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.ProfileID == 2 && n.Type == entity.NotificationTypeMessage && n.Title == "New message from kim"
		})).
		Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
		return e.Type == service.EventMessageSent && e.ProfileID == 2 && e.Attributes["messageId"] == "100"
	})).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
		return e.Type == service.EventNotificationCreated
	})).Return(nil)
	fx.push.EXPECT().SendToProfile(ctx, int64(2), "New message from kim", "Hi there", mock.Anything).Return(nil)

	message, err := fx.service.SendMessage(ctx, 1, &usecase.SendMessageInput{ReceiverID: 2, Content: "  Hi there \n"})

	require.NoError(t, err)
	assert.Equal(t, int64(100), message.ID)
	assert.Equal(t, "Hi there", message.Content)
}

func TestMessageService_SendMessage_SelfMessageSkipsNotification(t *testing.T) {
	fx := createTestMessageService(t)
	ctx := context.Background()

	fx.repos.profiles.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Profile{ID: 1}, nil)
	fx.repos.messages.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Message")).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil).Once()

	_, err := fx.service.SendMessage(ctx, 1, &usecase.SendMessageInput{ReceiverID: 1, Content: "note to self"})

	require.NoError(t, err)
	fx.repos.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.push.AssertNotCalled(t, "SendToProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMessageService_SendMessage_Rejections(t *testing.T) {
	t.Run("blank content", func(t *testing.T) {
		fx := createTestMessageService(t)

		_, err := fx.service.SendMessage(context.Background(), 1, &usecase.SendMessageInput{ReceiverID: 2, Content: " \t\n"})

		assert.True(t, errors.Is(err, domainerrors.ErrEmptyMessage))
	})

	t.Run("unknown receiver", func(t *testing.T) {
		fx := createTestMessageService(t)
		ctx := context.Background()

		fx.repos.profiles.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Profile{ID: 1}, nil)
		fx.repos.profiles.EXPECT().FindByID(ctx, int64(2)).Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.SendMessage(ctx, 1, &usecase.SendMessageInput{ReceiverID: 2, Content: "hello"})

		assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	})
}

func TestMessageService_GetConversation_MarksRead(t *testing.T) {
	fx := createTestMessageService(t)
	ctx := context.Background()

	history := []*entity.Message{
		{ID: 1, SenderID: 1, ReceiverID: 2, Content: "hi"},
		{ID: 2, SenderID: 2, ReceiverID: 1, Content: "hello"},
	}
	fx.repos.messages.EXPECT().ListConversation(ctx, int64(1), int64(2)).Return(history, nil)
	fx.repos.messages.EXPECT().MarkReadFrom(ctx, int64(1), int64(2)).Return(nil)

	messages, err := fx.service.GetConversation(ctx, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, history, messages)
}

func TestMessageService_ListConversations_SingleEntry(t *testing.T) {
	fx := createTestMessageService(t)
	ctx := context.Background()

	sent := &entity.Message{ID: 1, SenderID: 1, ReceiverID: 2, Content: "hi", CreatedAt: time.Now()}
	fx.repos.messages.EXPECT().ListByProfile(ctx, int64(1)).Return([]*entity.Message{sent}, nil)

	conversations, err := fx.service.ListConversations(ctx, 1)

	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, int64(2), conversations[0].PartnerID)
	assert.Equal(t, []*entity.Message{sent}, conversations[0].Messages)
}

func TestMessageService_DeleteMessage(t *testing.T) {
	message := &entity.Message{ID: 7, SenderID: 1, ReceiverID: 2}

	t.Run("receiver may delete", func(t *testing.T) {
		fx := createTestMessageService(t)
		ctx := context.Background()

		fx.repos.messages.EXPECT().FindByID(ctx, int64(7)).Return(message, nil)
		fx.repos.messages.EXPECT().Delete(ctx, int64(7)).Return(nil)

		require.NoError(t, fx.service.DeleteMessage(ctx, 2, 7))
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		fx := createTestMessageService(t)
		ctx := context.Background()

		fx.repos.messages.EXPECT().FindByID(ctx, int64(7)).Return(message, nil)

		err := fx.service.DeleteMessage(ctx, 3, 7)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestMessageService(t)
		ctx := context.Background()

		fx.repos.messages.EXPECT().FindByID(ctx, int64(7)).Return(nil, repository.ErrMessageNotFound)

		err := fx.service.DeleteMessage(ctx, 1, 7)

		assert.True(t, errors.Is(err, domainerrors.ErrMessageNotFound))
	})
}

func TestMessageService_DeleteConversation(t *testing.T) {
	fx := createTestMessageService(t)
	ctx := context.Background()

	fx.repos.messages.EXPECT().DeleteConversation(ctx, int64(1), int64(2)).Return(int64(3), nil)

	require.NoError(t, fx.service.DeleteConversation(ctx, 1, 2))
}
