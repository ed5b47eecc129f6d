package impl

import (
	"context"
	"testing"

	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
	mockRepo "beautymap/internal/mocks/repository"
	"beautymap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *repoMocks) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoMocks(t)
	expectTx(txManager, repos)

	return NewCatalogService(txManager, discardLogger()), repos
}

func TestCatalogService_CreateService_Success(t *testing.T) {
	svc, repos := createTestCatalogService(t)
	ctx := context.Background()

	repos.profiles.EXPECT().FindByID(ctx, int64(9)).Return(&entity.Profile{ID: 9, Role: entity.RoleProvider}, nil)
	repos.services.EXPECT().FindByNameAndProvider(ctx, "Lash Lift", int64(9)).Return(nil, repository.ErrServiceNotFound)
	repos.services.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Service")).
		Run(func(_ context.Context, s *entity.Service) { s.ID = 11 }).
		Return(nil)

	created, err := svc.CreateService(ctx, 9, &usecase.ServiceInput{Name: " Lash Lift ", Price: ptr("80"), DurationMinutes: ptr(60)})

	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, "Lash Lift", created.Name)
	assert.Equal(t, int64(9), created.ProviderID)
	assert.Equal(t, "80", *created.Price)
}

func TestCatalogService_CreateService_DuplicateNameIgnoresCase(t *testing.T) {
	svc, repos := createTestCatalogService(t)
	ctx := context.Background()

	repos.profiles.EXPECT().FindByID(ctx, int64(9)).Return(&entity.Profile{ID: 9, Role: entity.RoleProvider}, nil)
	repos.services.EXPECT().FindByNameAndProvider(ctx, "lash lift", int64(9)).Return(&entity.Service{ID: 1, ProviderID: 9, Name: "Lash Lift"}, nil)

	_, err := svc.CreateService(ctx, 9, &usecase.ServiceInput{Name: "lash lift"})

	assert.True(t, errors.Is(err, domainerrors.ErrServiceNameTaken))
}

func TestCatalogService_CreateService_RequiresProvider(t *testing.T) {
	svc, repos := createTestCatalogService(t)
	ctx := context.Background()

	repos.profiles.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Profile{ID: 5, Role: entity.RoleClient}, nil)

	_, err := svc.CreateService(ctx, 5, &usecase.ServiceInput{Name: "Nails"})

	assert.True(t, errors.Is(err, domainerrors.ErrNotProvider))
}

func TestCatalogService_CreateService_UnknownProvider(t *testing.T) {
	svc, repos := createTestCatalogService(t)
	ctx := context.Background()

	repos.profiles.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrProfileNotFound)

	_, err := svc.CreateService(ctx, 404, &usecase.ServiceInput{Name: "Nails"})

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestCatalogService_UpdateService(t *testing.T) {
	t.Run("renaming to its own name is allowed", func(t *testing.T) {
		svc, repos := createTestCatalogService(t)
		ctx := context.Background()

		existing := &entity.Service{ID: 4, ProviderID: 9, Name: "brows"}
		repos.services.EXPECT().FindByID(ctx, int64(4)).Return(existing, nil)
		repos.services.EXPECT().FindByNameAndProvider(ctx, "Brows", int64(9)).Return(existing, nil)
		repos.services.EXPECT().Update(ctx, existing).Return(nil)

		updated, err := svc.UpdateService(ctx, 4, &usecase.UpdateServiceInput{Name: ptr("Brows"), DurationMinutes: ptr(30)})

		require.NoError(t, err)
		assert.Equal(t, "Brows", updated.Name)
		assert.Equal(t, 30, *updated.DurationMinutes)
	})

	t.Run("name used by a sibling", func(t *testing.T) {
		svc, repos := createTestCatalogService(t)
		ctx := context.Background()

		repos.services.EXPECT().FindByID(ctx, int64(4)).Return(&entity.Service{ID: 4, ProviderID: 9, Name: "brows"}, nil)
		repos.services.EXPECT().FindByNameAndProvider(ctx, "Lashes", int64(9)).Return(&entity.Service{ID: 5, ProviderID: 9, Name: "lashes"}, nil)

		_, err := svc.UpdateService(ctx, 4, &usecase.UpdateServiceInput{Name: ptr("Lashes")})

		assert.True(t, errors.Is(err, domainerrors.ErrServiceNameTaken))
	})

	t.Run("missing", func(t *testing.T) {
		svc, repos := createTestCatalogService(t)
		ctx := context.Background()

		repos.services.EXPECT().FindByID(ctx, int64(4)).Return(nil, repository.ErrServiceNotFound)

		_, err := svc.UpdateService(ctx, 4, &usecase.UpdateServiceInput{Price: ptr("20")})

		assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
	})
}

func TestCatalogService_DeleteService(t *testing.T) {
	owned := &entity.Service{ID: 4, ProviderID: 9, Name: "Brows"}

	tests := []struct {
		name    string
		actor   *entity.Profile
		wantErr error
	}{
		{name: "owner", actor: &entity.Profile{ID: 9, Role: entity.RoleProvider}},
		{name: "admin", actor: &entity.Profile{ID: 1, IsAdmin: true}},
		{name: "other provider", actor: &entity.Profile{ID: 10, Role: entity.RoleProvider}, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repos := createTestCatalogService(t)
			ctx := context.Background()

			repos.services.EXPECT().FindByID(ctx, int64(4)).Return(owned, nil)
			if tt.wantErr == nil {
				repos.services.EXPECT().Delete(ctx, int64(4)).Return(nil)
			}

			err := svc.DeleteService(ctx, tt.actor, 4)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
		})
	}
}
