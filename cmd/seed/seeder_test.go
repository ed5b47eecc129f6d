package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	ucmocks "beautymap/internal/mocks/usecase"
	"beautymap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSeeder(t *testing.T) (*seeder, *ucmocks.MockProfileUsecase, *ucmocks.MockCatalogUsecase, *ucmocks.MockReviewUsecase) {
	t.Helper()

	profiles := ucmocks.NewMockProfileUsecase(t)
	catalog := ucmocks.NewMockCatalogUsecase(t)
	reviews := ucmocks.NewMockReviewUsecase(t)

	s := newSeeder(seederParams{
		ProfileUC: profiles,
		CatalogUC: catalog,
		ReviewUC:  reviews,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return s, profiles, catalog, reviews
}

func TestSeeder_FirstRun(t *testing.T) {
	s, profiles, catalog, reviews := newTestSeeder(t)

	for i, demo := range demoProfiles {
		profiles.EXPECT().CreateProfile(mock.Anything, demo.externalID, mock.Anything).
			Return(&entity.Profile{ID: int64(i + 1), Username: demo.input.Username}, nil)
	}
	catalog.EXPECT().CreateService(mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.Service{}, nil).Times(4)
	reviews.EXPECT().CreateReview(mock.Anything, int64(3), mock.MatchedBy(func(in *usecase.CreateReviewInput) bool {
		return in.ProviderID == 1 || in.ProviderID == 2
	})).Return(&entity.Review{}, nil).Times(2)

	require.NoError(t, s.run(context.Background()))
}

func TestSeeder_RerunSkipsExisting(t *testing.T) {
	s, profiles, catalog, reviews := newTestSeeder(t)

	for i, demo := range demoProfiles {
		profiles.EXPECT().CreateProfile(mock.Anything, demo.externalID, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrProfileAlreadyExists, "failed to create profile"))
		profiles.EXPECT().GetByExternalID(mock.Anything, demo.externalID).
			Return(&entity.Profile{ID: int64(i + 1)}, nil)
	}
	catalog.EXPECT().CreateService(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrServiceNameTaken).Times(4)
	reviews.EXPECT().CreateReview(mock.Anything, int64(3), mock.Anything).
		Return(nil, domainerrors.ErrAlreadyReviewed).Times(2)

	require.NoError(t, s.run(context.Background()))
}

func TestSeeder_StopsOnUnexpectedError(t *testing.T) {
	s, profiles, _, _ := newTestSeeder(t)

	profiles.EXPECT().CreateProfile(mock.Anything, demoProfiles[0].externalID, mock.Anything).
		Return(nil, errors.New("connection refused"))

	err := s.run(context.Background())

	assert.ErrorContains(t, err, "failed to seed profile sarah_beauty")
}

func TestDemoData_OnlyProvidersOfferServices(t *testing.T) {
	for _, demo := range demoProfiles {
		assert.True(t, demo.input.Role.IsValid(), demo.input.Username)
		if demo.input.Role == entity.RoleClient {
			assert.Empty(t, demo.services, demo.input.Username)
		}
	}
}
