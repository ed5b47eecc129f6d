package usecase

import (
	"context"

	"beautymap/internal/domain/directory"
	"beautymap/internal/domain/entity"
	"beautymap/internal/domain/service"

	"github.com/paulmach/orb/geojson"
)

// DirectoryUsecase answers public directory and map queries.
type DirectoryUsecase interface {
	ListProviders(ctx context.Context, filter directory.Filter) ([]*entity.ProviderListing, error)
	// ProviderMap returns the mappable subset of ListProviders as GeoJSON points.
	ProviderMap(ctx context.Context, filter directory.Filter) (*geojson.FeatureCollection, error)
	// Geocode resolves a free-text address. Lookup failures yield an empty result.
	Geocode(ctx context.Context, query string) ([]service.GeocodeResult, error)
}
