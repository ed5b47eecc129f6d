package main

import (
	"context"
	"log/slog"

	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type demoProfile struct {
	externalID string
	input      usecase.CreateProfileInput
	services   []usecase.ServiceInput
}

type demoReview struct {
	clientExternalID   string
	providerExternalID string
	input              usecase.CreateReviewInput
}

func ptr[T any](v T) *T { return &v }

var demoProfiles = []demoProfile{
	{
		externalID: "user_provider_1",
		input: usecase.CreateProfileInput{
			Username: "sarah_beauty",
			Role:     entity.RoleProvider,
			ProfileDetailsInput: usecase.ProfileDetailsInput{
				Bio:          ptr("Certified lash technician with 5 years experience. I work from my cozy home studio in Bondi."),
				Instagram:    ptr("@sarah_lashes"),
				Location:     ptr("Bondi Beach, Sydney"),
				LocationType: ptr(entity.LocationTypeStudio),
				Latitude:     ptr(-33.8915),
				Longitude:    ptr(151.2767),
			},
		},
		services: []usecase.ServiceInput{
			{Name: "Classic Lashes", Price: ptr("80"), DurationMinutes: ptr(90), Description: ptr("Natural looking lash extensions")},
			{Name: "Volume Lashes", Price: ptr("120"), DurationMinutes: ptr(120), Description: ptr("Full and fluffy look")},
		},
	},
	{
		externalID: "user_provider_2",
		input: usecase.CreateProfileInput{
			Username: "glam_mobile",
			Role:     entity.RoleProvider,
			ProfileDetailsInput: usecase.ProfileDetailsInput{
				Bio:          ptr("Mobile makeup artist for weddings and events across Sydney. I come to you!"),
				Instagram:    ptr("@glam_mobile_mua"),
				Location:     ptr("Greater Sydney Area"),
				LocationType: ptr(entity.LocationTypeMobile),
				Latitude:     ptr(-33.8688),
				Longitude:    ptr(151.2093),
			},
		},
		services: []usecase.ServiceInput{
			{Name: "Bridal Makeup", Price: ptr("150"), DurationMinutes: ptr(60), Description: ptr("Full bridal glam")},
			{Name: "Event Makeup", Price: ptr("100"), DurationMinutes: ptr(45), Description: ptr("Party/Event makeup")},
		},
	},
	{
		externalID: "user_client_1",
		input: usecase.CreateProfileInput{
			Username: "jessica_c",
			Role:     entity.RoleClient,
			ProfileDetailsInput: usecase.ProfileDetailsInput{
				Bio:       ptr("Love beauty!"),
				Location:  ptr("Surry Hills"),
				Latitude:  ptr(-33.8861),
				Longitude: ptr(151.2111),
			},
		},
	},
}

// Ratings are derived from reviews, so the demo providers get theirs from real ones.
var demoReviews = []demoReview{
	{
		clientExternalID:   "user_client_1",
		providerExternalID: "user_provider_1",
		input:              usecase.CreateReviewInput{Rating: 5, Comment: ptr("Best lashes in Bondi!"), DisplayName: ptr("Jess")},
	},
	{
		clientExternalID:   "user_client_1",
		providerExternalID: "user_provider_2",
		input:              usecase.CreateReviewInput{Rating: 5, Comment: ptr("Made my wedding day.")},
	},
}

type seederParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	CatalogUC usecase.CatalogUsecase
	ReviewUC  usecase.ReviewUsecase
	Logger    *slog.Logger
}

// seeder inserts the demo data. Running it again skips what already exists.
type seeder struct {
	profileUC usecase.ProfileUsecase
	catalogUC usecase.CatalogUsecase
	reviewUC  usecase.ReviewUsecase
	logger    *slog.Logger
}

func newSeeder(params seederParams) *seeder {
	return &seeder{
		profileUC: params.ProfileUC,
		catalogUC: params.CatalogUC,
		reviewUC:  params.ReviewUC,
		logger:    params.Logger,
	}
}

func (s *seeder) run(ctx context.Context) error {
	s.logger.Info("Seeding database")

	ids := make(map[string]int64, len(demoProfiles))
	for _, demo := range demoProfiles {
		profile, err := s.ensureProfile(ctx, demo)
		if err != nil {
			return err
		}
		ids[demo.externalID] = profile.ID

		for _, svc := range demo.services {
			if err := s.ensureService(ctx, profile.ID, svc); err != nil {
				return err
			}
		}
	}

	for _, demo := range demoReviews {
		input := demo.input
		input.ProviderID = ids[demo.providerExternalID]

		_, err := s.reviewUC.CreateReview(ctx, ids[demo.clientExternalID], &input)
		if err != nil && !errors.Is(err, domainerrors.ErrAlreadyReviewed) {
			return errors.Wrapf(err, "failed to seed review of %s", demo.providerExternalID)
		}
	}

	s.logger.Info("Seeding complete", slog.Int("profiles", len(demoProfiles)), slog.Int("reviews", len(demoReviews)))

	return nil
}

func (s *seeder) ensureProfile(ctx context.Context, demo demoProfile) (*entity.Profile, error) {
	input := demo.input
	profile, err := s.profileUC.CreateProfile(ctx, demo.externalID, &input)
	if err == nil {
		s.logger.Info("Seeded profile", slog.String("username", profile.Username))

		return profile, nil
	}
	if !errors.Is(err, domainerrors.ErrProfileAlreadyExists) {
		return nil, errors.Wrapf(err, "failed to seed profile %s", demo.input.Username)
	}

	profile, err = s.profileUC.GetByExternalID(ctx, demo.externalID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load existing profile %s", demo.input.Username)
	}

	return profile, nil
}

func (s *seeder) ensureService(ctx context.Context, providerID int64, svc usecase.ServiceInput) error {
	_, err := s.catalogUC.CreateService(ctx, providerID, &svc)
	if err != nil && !errors.Is(err, domainerrors.ErrServiceNameTaken) {
		return errors.Wrapf(err, "failed to seed service %s", svc.Name)
	}

	return nil
}
