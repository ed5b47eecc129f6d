package impl

import (
	"context"
	"testing"

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

type reviewServiceFixtures struct {
	service   usecase.ReviewUsecase
	repos     *repoMocks
	publisher *mockService.MockEventPublisher
	push      *mockService.MockPushService
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoMocks(t)
	events, publisher, push := newTestDispatcher(t)
	expectTx(txManager, repos)

	return reviewServiceFixtures{
		service:   NewReviewService(ReviewServiceParams{TxManager: txManager, Events: events, Logger: discardLogger()}),
		repos:     repos,
		publisher: publisher,
		push:      push,
	}
}

func TestReviewService_CreateReview_RecomputesRating(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	provider := &entity.Profile{ID: 9, Role: entity.RoleProvider, Rating: 4, ReviewCount: 1}
	fx.repos.profiles.EXPECT().FindByIDForUpdate(ctx, int64(9)).Return(provider, nil)
	fx.repos.reviews.EXPECT().FindByProviderAndClient(ctx, int64(9), int64(6)).Return(nil, repository.ErrReviewNotFound)
	fx.repos.reviews.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(_ context.Context, r *entity.Review) { r.ID = 21 }).
		Return(nil)
	fx.repos.reviews.EXPECT().ListRatingsByProvider(ctx, int64(9)).Return([]int{4, 2}, nil)
	fx.repos.profiles.EXPECT().UpdateRating(ctx, int64(9), 3.0, 2).Return(nil)
	fx.repos.notifications.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.ProfileID == 9 && n.Type == entity.NotificationTypeReview
		})).
		Run(func(_ context.Context, n *entity.Notification) { n.ID = 30 }).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool { return e.Type == service.EventReviewCreated })).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool { return e.Type == service.EventNotificationCreated })).
		Return(nil)
	fx.push.EXPECT().SendToProfile(ctx, int64(9), "New review", mock.Anything, mock.Anything).Return(nil)

	review, err := fx.service.CreateReview(ctx, 6, &usecase.CreateReviewInput{ProviderID: 9, Rating: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(21), review.ID)
	assert.Equal(t, entity.DefaultReviewDisplayName, review.DisplayName)
}

func TestReviewService_CreateReview_FanOutFailureIsNotReturned(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.repos.profiles.EXPECT().FindByIDForUpdate(ctx, int64(9)).Return(&entity.Profile{ID: 9, Role: entity.RoleProvider}, nil)
	fx.repos.reviews.EXPECT().FindByProviderAndClient(ctx, int64(9), int64(5)).Return(nil, repository.ErrReviewNotFound)
	fx.repos.reviews.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	fx.repos.reviews.EXPECT().ListRatingsByProvider(ctx, int64(9)).Return([]int{5}, nil)
	fx.repos.profiles.EXPECT().UpdateRating(ctx, int64(9), 5.0, 1).Return(nil)
	fx.repos.notifications.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))
	fx.push.EXPECT().SendToProfile(ctx, int64(9), mock.Anything, mock.Anything, mock.Anything).Return(errors.New("fcm down"))

	review, err := fx.service.CreateReview(ctx, 5, &usecase.CreateReviewInput{ProviderID: 9, Rating: 5, DisplayName: ptr(" Jess ")})

	require.NoError(t, err)
	assert.Equal(t, "Jess", review.DisplayName)
}

func TestReviewService_CreateReview_Rejections(t *testing.T) {
	t.Run("self review", func(t *testing.T) {
		fx := createTestReviewService(t)

		_, err := fx.service.CreateReview(context.Background(), 9, &usecase.CreateReviewInput{ProviderID: 9, Rating: 5})

		assert.True(t, errors.Is(err, domainerrors.ErrSelfReview))
	})

	t.Run("rating out of range", func(t *testing.T) {
		fx := createTestReviewService(t)

		for _, r := range []int{0, 6, -1} {
			_, err := fx.service.CreateReview(context.Background(), 5, &usecase.CreateReviewInput{ProviderID: 9, Rating: r})
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "rating %d", r)
		}
	})

	t.Run("subject is not a provider", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.repos.profiles.EXPECT().FindByIDForUpdate(ctx, int64(6)).Return(&entity.Profile{ID: 6, Role: entity.RoleClient}, nil)

		_, err := fx.service.CreateReview(ctx, 5, &usecase.CreateReviewInput{ProviderID: 6, Rating: 3})

		assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	})

	t.Run("provider missing", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.repos.profiles.EXPECT().FindByIDForUpdate(ctx, int64(99)).Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.CreateReview(ctx, 5, &usecase.CreateReviewInput{ProviderID: 99, Rating: 3})

		assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	})

	t.Run("already reviewed", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.repos.profiles.EXPECT().FindByIDForUpdate(ctx, int64(9)).Return(&entity.Profile{ID: 9, Role: entity.RoleProvider}, nil)
		fx.repos.reviews.EXPECT().FindByProviderAndClient(ctx, int64(9), int64(5)).Return(&entity.Review{ID: 1}, nil)

		_, err := fx.service.CreateReview(ctx, 5, &usecase.CreateReviewInput{ProviderID: 9, Rating: 3})

		assert.True(t, errors.Is(err, domainerrors.ErrAlreadyReviewed))
	})

	t.Run("recompute failure", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.repos.profiles.EXPECT().FindByIDForUpdate(ctx, int64(9)).Return(&entity.Profile{ID: 9, Role: entity.RoleProvider}, nil)
		fx.repos.reviews.EXPECT().FindByProviderAndClient(ctx, int64(9), int64(5)).Return(nil, repository.ErrReviewNotFound)
		fx.repos.reviews.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
		fx.repos.reviews.EXPECT().ListRatingsByProvider(ctx, int64(9)).Return(nil, errors.New("timeout"))

		_, err := fx.service.CreateReview(ctx, 5, &usecase.CreateReviewInput{ProviderID: 9, Rating: 3})

		require.Error(t, err)
		fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestReviewService_DeleteReview(t *testing.T) {
	t.Run("author deletes and rating resets", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.repos.reviews.EXPECT().FindByID(ctx, int64(21)).Return(&entity.Review{ID: 21, ProviderID: 9, ClientID: 5, Rating: 4}, nil)
		fx.repos.profiles.EXPECT().FindByIDForUpdate(ctx, int64(9)).Return(&entity.Profile{ID: 9}, nil)
		fx.repos.reviews.EXPECT().Delete(ctx, int64(21)).Return(nil)
		fx.repos.reviews.EXPECT().ListRatingsByProvider(ctx, int64(9)).Return([]int{}, nil)
		fx.repos.profiles.EXPECT().UpdateRating(ctx, int64(9), 0.0, 0).Return(nil)
		fx.publisher.EXPECT().
			Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
				return e.Type == service.EventReviewDeleted && e.ProfileID == 9
			})).
			Return(nil)

		err := fx.service.DeleteReview(ctx, &entity.Profile{ID: 5}, 21)

		require.NoError(t, err)
	})

	t.Run("someone else", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.repos.reviews.EXPECT().FindByID(ctx, int64(21)).Return(&entity.Review{ID: 21, ProviderID: 9, ClientID: 5}, nil)

		err := fx.service.DeleteReview(ctx, &entity.Profile{ID: 9}, 21)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.repos.reviews.EXPECT().FindByID(ctx, int64(21)).Return(nil, repository.ErrReviewNotFound)

		err := fx.service.DeleteReview(ctx, &entity.Profile{ID: 5}, 21)

		assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
	})
}

func TestReviewService_CheckReview(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.repos.reviews.EXPECT().FindByProviderAndClient(ctx, int64(9), int64(5)).Return(&entity.Review{ID: 21}, nil)
	fx.repos.reviews.EXPECT().FindByProviderAndClient(ctx, int64(10), int64(5)).Return(nil, repository.ErrReviewNotFound)

	check, err := fx.service.CheckReview(ctx, 5, 9)
	require.NoError(t, err)
	assert.True(t, check.HasReviewed)
	assert.Equal(t, int64(21), *check.ReviewID)

	check, err = fx.service.CheckReview(ctx, 5, 10)
	require.NoError(t, err)
	assert.False(t, check.HasReviewed)
	assert.Nil(t, check.ReviewID)
}
