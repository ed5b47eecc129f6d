package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"beautymap/internal/domain/repository"
	mockRepo "beautymap/internal/mocks/repository"
	mockService "beautymap/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

const txCallbackType = "func(repository.RepositoryFactory) error"

// repoMocks bundles one mock per repository behind a single factory.
type repoMocks struct {
	factory       *mockRepo.MockRepositoryFactory
	profiles      *mockRepo.MockProfileRepository
	services      *mockRepo.MockServiceRepository
	reviews       *mockRepo.MockReviewRepository
	messages      *mockRepo.MockMessageRepository
	notifications *mockRepo.MockNotificationRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	t.Helper()

	m := &repoMocks{
		factory:       mockRepo.NewMockRepositoryFactory(t),
		profiles:      mockRepo.NewMockProfileRepository(t),
		services:      mockRepo.NewMockServiceRepository(t),
		reviews:       mockRepo.NewMockReviewRepository(t),
		messages:      mockRepo.NewMockMessageRepository(t),
		notifications: mockRepo.NewMockNotificationRepository(t),
	}

	m.factory.EXPECT().ProfileRepo().Return(m.profiles).Maybe()
	m.factory.EXPECT().ServiceRepo().Return(m.services).Maybe()
	m.factory.EXPECT().ReviewRepo().Return(m.reviews).Maybe()
	m.factory.EXPECT().MessageRepo().Return(m.messages).Maybe()
	m.factory.EXPECT().NotificationRepo().Return(m.notifications).Maybe()

	return m
}

// expectTx makes every Execute call run its callback against the mocked repositories.
func expectTx(txManager *mockRepo.MockTransactionManager, repos *repoMocks) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType(txCallbackType)).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		}).
		Maybe()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDispatcher returns a dispatcher whose collaborators accept any call.
func newTestDispatcher(t *testing.T) (*EventDispatcher, *mockService.MockEventPublisher, *mockService.MockPushService) {
	t.Helper()

	publisher := mockService.NewMockEventPublisher(t)
	push := mockService.NewMockPushService(t)

	return NewEventDispatcher(EventDispatcherParams{
		Publisher: publisher,
		Push:      push,
		Logger:    discardLogger(),
	}), publisher, push
}

func ptr[T any](v T) *T { return &v }
