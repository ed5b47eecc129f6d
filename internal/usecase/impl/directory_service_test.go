package impl

import (
	"context"
	"testing"

	"beautymap/config"
	"beautymap/internal/domain/directory"
	"beautymap/internal/domain/entity"
	"beautymap/internal/domain/service"
	mockRepo "beautymap/internal/mocks/repository"
	mockService "beautymap/internal/mocks/service"
	"beautymap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type directoryServiceFixtures struct {
	service  usecase.DirectoryUsecase
	repos    *repoMocks
	geocoder *mockService.MockGeocoder
}

func createTestDirectoryService(t *testing.T, maxRadiusKm float64) directoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoMocks(t)
	geocoder := mockService.NewMockGeocoder(t)
	expectTx(txManager, repos)

	cfg := &config.Config{Directory: config.DirectoryConfig{MaxRadiusKm: maxRadiusKm}}

	return directoryServiceFixtures{
		service: NewDirectoryService(DirectoryServiceParams{
			TxManager: txManager,
			Geocoder:  geocoder,
			Config:    cfg,
			Logger:    discardLogger(),
		}),
		repos:    repos,
		geocoder: geocoder,
	}
}

// seedDirectory returns three providers around Sydney, one of them mobile.
func seedDirectory(fx directoryServiceFixtures) {
	studio := entity.LocationTypeStudio
	mobile := entity.LocationTypeMobile
	house := entity.LocationTypeHouse

	providers := []*entity.Profile{
		{ID: 1, Username: "sarah_beauty", Role: entity.RoleProvider, Bio: "Lash extensions and brows", LocationType: &studio, Latitude: ptr(-33.8688), Longitude: ptr(151.2093), Rating: 4.5},
		{ID: 2, Username: "glam_mobile", Role: entity.RoleProvider, Bio: "I come to you", LocationType: &mobile, Latitude: ptr(-33.87), Longitude: ptr(151.21)},
		{ID: 3, Username: "nails_by_kim", Role: entity.RoleProvider, Bio: "Gel nails", LocationType: &house, Latitude: ptr(-37.8136), Longitude: ptr(144.9631)},
	}
	services := []*entity.Service{
		{ID: 10, ProviderID: 1, Name: "Lash Lift"},
		{ID: 11, ProviderID: 2, Name: "Bridal Makeup", Description: ptr("Includes lashes")},
		{ID: 12, ProviderID: 3, Name: "Gel Manicure"},
	}

	fx.repos.profiles.EXPECT().ListByRole(mock.Anything, entity.RoleProvider).Return(providers, nil)
	fx.repos.services.EXPECT().ListByProviders(mock.Anything, []int64{1, 2, 3}).Return(services, nil)
}

func listingIDs(listings []*entity.ProviderListing) []int64 {
	ids := make([]int64, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.Profile.ID)
	}

	return ids
}

func TestDirectoryService_ListProviders_AttachesServices(t *testing.T) {
	fx := createTestDirectoryService(t, 200)
	seedDirectory(fx)

	listings, err := fx.service.ListProviders(context.Background(), directory.Filter{})

	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, "Lash Lift", listings[0].Services[0].Name)
	assert.Len(t, listings[2].Services, 1)
}

func TestDirectoryService_ListProviders_LashSearch(t *testing.T) {
	fx := createTestDirectoryService(t, 200)
	seedDirectory(fx)

	listings, err := fx.service.ListProviders(context.Background(), directory.Filter{Search: "LASH"})

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, listingIDs(listings))
}

func TestDirectoryService_ListProviders_RadiusIsCapped(t *testing.T) {
	fx := createTestDirectoryService(t, 50)
	seedDirectory(fx)

	near := &directory.Near{Latitude: -33.8688, Longitude: 151.2093, RadiusKm: 5000}
	listings, err := fx.service.ListProviders(context.Background(), directory.Filter{Near: near})

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, listingIDs(listings))
	assert.InDelta(t, 5000, near.RadiusKm, 1e-9)
}

func TestDirectoryService_ProviderMap_ExcludesMobile(t *testing.T) {
	fx := createTestDirectoryService(t, 200)
	seedDirectory(fx)

	fc, err := fx.service.ProviderMap(context.Background(), directory.Filter{})

	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	first := fc.Features[0]
	assert.Equal(t, "Point", first.Geometry.GeoJSONType())
	assert.Equal(t, "sarah_beauty", first.Properties["username"])
	assert.Equal(t, "studio", first.Properties["locationType"])
	assert.Equal(t, []string{"Lash Lift"}, first.Properties["services"])
	assert.Equal(t, int64(3), fc.Features[1].Properties["id"])
}

func TestDirectoryService_Geocode(t *testing.T) {
	t.Run("short query skips lookup", func(t *testing.T) {
		fx := createTestDirectoryService(t, 200)

		results, err := fx.service.Geocode(context.Background(), " sy ")

		require.NoError(t, err)
		assert.Empty(t, results)
		assert.NotNil(t, results)
	})

	t.Run("upstream failure degrades to empty", func(t *testing.T) {
		fx := createTestDirectoryService(t, 200)
		ctx := context.Background()

		fx.geocoder.EXPECT().Search(ctx, "Sydney").Return(nil, errors.New("503"))

		results, err := fx.service.Geocode(ctx, "Sydney")

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("passes results through", func(t *testing.T) {
		fx := createTestDirectoryService(t, 200)
		ctx := context.Background()

		want := []service.GeocodeResult{{DisplayName: "Sydney NSW, Australia", Latitude: -33.86, Longitude: 151.2}}
		fx.geocoder.EXPECT().Search(ctx, "Sydney").Return(want, nil)

		results, err := fx.service.Geocode(ctx, "Sydney")

		require.NoError(t, err)
		assert.Equal(t, want, results)
	})
}
