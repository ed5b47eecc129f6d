package impl

import (
	"context"
	"strings"
	"testing"

	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
	mockRepo "beautymap/internal/mocks/repository"
	mockService "beautymap/internal/mocks/service"
	"beautymap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	repos     *repoMocks
	counter   *mockService.MockVisitCounter
	publisher *mockService.MockEventPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoMocks(t)
	counter := mockService.NewMockVisitCounter(t)
	events, publisher, _ := newTestDispatcher(t)
	expectTx(txManager, repos)

	return adminServiceFixtures{
		service: NewAdminService(AdminServiceParams{
			TxManager:    txManager,
			VisitCounter: counter,
			Events:       events,
			Logger:       discardLogger(),
		}),
		repos:     repos,
		counter:   counter,
		publisher: publisher,
	}
}

func TestAdminService_Stats(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.repos.profiles.EXPECT().CountByRole(ctx).Return(map[entity.Role]int64{
		entity.RoleProvider: 3,
		entity.RoleClient:   5,
	}, nil)
	fx.repos.messages.EXPECT().Count(ctx).Return(int64(42), nil)
	fx.repos.profiles.EXPECT().CountProvidersByLocationType(ctx).Return([]entity.LocationTypeCount{
		{LocationType: entity.LocationTypeStudio, Count: 2},
	}, nil)

	stats, err := fx.service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(8), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.TotalProviders)
	assert.Equal(t, int64(5), stats.TotalClients)
	assert.Equal(t, int64(42), stats.MessagesSent)
	assert.Len(t, stats.ProvidersByLocationType, 1)
}

func TestAdminService_PageVisits(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.counter.EXPECT().Increment(ctx).Return(nil)
	fx.counter.EXPECT().Count(ctx).Return(int64(17), nil)

	require.NoError(t, fx.service.RecordPageVisit(ctx))

	count, err := fx.service.PageVisits(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(17), count)
}

func TestAdminService_CreateDemoProfile(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.repos.profiles.EXPECT().
		FindByExternalID(ctx, mock.MatchedBy(func(id string) bool { return strings.HasPrefix(id, "demo_") })).
		Return(nil, repository.ErrProfileNotFound)
	fx.repos.profiles.EXPECT().ExistsByUsername(ctx, "demo_artist").Return(false, nil)
	fx.repos.profiles.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

	profile, err := fx.service.CreateDemoProfile(ctx, &usecase.CreateProfileInput{Username: "demo_artist", Role: entity.RoleProvider})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(profile.ExternalID, "demo_"))
	assert.Len(t, profile.ExternalID, len("demo_")+36)
}

func TestAdminService_UpdateProfile_UsernameConflict(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.repos.profiles.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Profile{ID: 3, Username: "kim"}, nil)
	fx.repos.profiles.EXPECT().FindByUsername(ctx, "sarah").Return(&entity.Profile{ID: 1, Username: "sarah"}, nil)

	input := &usecase.AdminUpdateProfileInput{Username: ptr("sarah")}
	_, err := fx.service.UpdateProfile(ctx, 3, input)

	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAdminService_UpdateProfile_EditsFields(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.repos.profiles.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Profile{ID: 3, Username: "kim", Role: entity.RoleClient}, nil)
	fx.repos.profiles.EXPECT().FindByUsername(ctx, "kim_nails").Return(nil, repository.ErrProfileNotFound)
	fx.repos.profiles.EXPECT().UpdateUsername(ctx, int64(3), "kim_nails", mock.AnythingOfType("time.Time")).Return(nil)
	fx.repos.profiles.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

	input := &usecase.AdminUpdateProfileInput{
		Username: ptr("kim_nails"),
		UpdateProfileInput: usecase.UpdateProfileInput{
			Role:                ptr(entity.RoleProvider),
			ProfileDetailsInput: usecase.ProfileDetailsInput{Location: ptr("Melbourne")},
		},
	}
	profile, err := fx.service.UpdateProfile(ctx, 3, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleProvider, profile.Role)
	assert.Equal(t, "Melbourne", profile.Location)
}

func TestAdminService_DeleteProfile_NotFound(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.repos.profiles.EXPECT().FindByIDForUpdate(ctx, int64(77)).Return(nil, repository.ErrProfileNotFound)

	err := fx.service.DeleteProfile(ctx, 77)

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
