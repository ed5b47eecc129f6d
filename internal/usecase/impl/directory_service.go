package impl

import (
	"context"
	"log/slog"
	"strings"

	"beautymap/config"
	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/domain/constants"
	"beautymap/internal/domain/directory"
	"beautymap/internal/domain/entity"
	"beautymap/internal/domain/repository"
	"beautymap/internal/domain/service"
	"beautymap/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	txManager   repository.TransactionManager
	geocoder    service.Geocoder
	maxRadiusKm float64
	logger      *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Geocoder  service.Geocoder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	maxRadiusKm := constants.DefaultMaxRadiusKm
	if params.Config != nil && params.Config.Directory.MaxRadiusKm > 0 {
		maxRadiusKm = params.Config.Directory.MaxRadiusKm
	}

	return &directoryService{
		txManager:   params.TxManager,
		geocoder:    params.Geocoder,
		maxRadiusKm: maxRadiusKm,
		logger:      params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProviders returns every provider with its services that matches the filter.
func (srv *directoryService) ListProviders(ctx context.Context, filter directory.Filter) ([]*entity.ProviderListing, error) {
	if filter.Near != nil {
		near := *filter.Near
		if near.RadiusKm <= 0 || near.RadiusKm > srv.maxRadiusKm {
			near.RadiusKm = srv.maxRadiusKm
		}
		filter.Near = &near
	}

	var listings []*entity.ProviderListing
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		providers, err := repoFactory.ProfileRepo().ListByRole(ctx, entity.RoleProvider)
		if err != nil {
			return errors.Wrap(err, "failed to list providers")
		}

		ids := make([]int64, 0, len(providers))
		for _, p := range providers {
			ids = append(ids, p.ID)
		}

		services, err := repoFactory.ServiceRepo().ListByProviders(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to list provider services")
		}

		byProvider := make(map[int64][]*entity.Service, len(providers))
		for _, s := range services {
			byProvider[s.ProviderID] = append(byProvider[s.ProviderID], s)
		}

		listings = make([]*entity.ProviderListing, 0, len(providers))
		for _, p := range providers {
			svcs := byProvider[p.ID]
			if svcs == nil {
				svcs = []*entity.Service{}
			}
			listings = append(listings, &entity.ProviderListing{Profile: p, Services: svcs})
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to load directory")
	}

	result := directory.Apply(listings, filter)
	srv.log(ctx).Debug("Directory query",
		slog.String("search", filter.Search),
		slog.Int("candidates", len(listings)),
		slog.Int("matches", len(result)))

	return result, nil
}

// ProviderMap returns the filtered, mappable providers as a GeoJSON FeatureCollection.
func (srv *directoryService) ProviderMap(ctx context.Context, filter directory.Filter) (*geojson.FeatureCollection, error) {
	listings, err := srv.ListProviders(ctx, filter)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, l := range directory.Mappable(listings) {
		fc.Append(listingFeature(l))
	}

	return fc, nil
}

// Geocode proxies an address search. Short queries and upstream failures yield no results.
func (srv *directoryService) Geocode(ctx context.Context, query string) ([]service.GeocodeResult, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < constants.MinGeocodeQueryLength || srv.geocoder == nil {
		return []service.GeocodeResult{}, nil
	}

	results, err := srv.geocoder.Search(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Geocoding lookup failed", slog.String("query", query), slog.Any("error", err))

		return []service.GeocodeResult{}, nil
	}
	if results == nil {
		results = []service.GeocodeResult{}
	}

	return results, nil
}

func listingFeature(l *entity.ProviderListing) *geojson.Feature {
	p := l.Profile
	f := geojson.NewFeature(orb.Point{*p.Longitude, *p.Latitude})
	f.ID = p.ID

	names := make([]string, 0, len(l.Services))
	for _, s := range l.Services {
		names = append(names, s.Name)
	}

	f.Properties["id"] = p.ID
	f.Properties["username"] = p.Username
	f.Properties["rating"] = p.Rating
	f.Properties["reviewCount"] = p.ReviewCount
	f.Properties["services"] = names
	if p.LocationType != nil {
		f.Properties["locationType"] = string(*p.LocationType)
	}
	if p.Location != "" {
		f.Properties["location"] = p.Location
	}
	if p.ProfileImageURL != "" {
		f.Properties["profileImageUrl"] = p.ProfileImageURL
	}

	return f
}
