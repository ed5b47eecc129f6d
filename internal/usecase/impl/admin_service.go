package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/domain/entity"
	"beautymap/internal/domain/repository"
	"beautymap/internal/domain/service"
	"beautymap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const demoExternalIDPrefix = "demo_"

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager    repository.TransactionManager
	visitCounter service.VisitCounter
	events       *EventDispatcher
	logger       *slog.Logger
	now          func() time.Time
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	VisitCounter service.VisitCounter
	Events       *EventDispatcher
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:    params.TxManager,
		visitCounter: params.VisitCounter,
		events:       params.Events,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Stats computes the dashboard summary from the current data.
func (srv *adminService) Stats(ctx context.Context) (*entity.AdminStats, error) {
	stats := &entity.AdminStats{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		byRole, err := profileRepo.CountByRole(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count profiles by role")
		}
		for _, n := range byRole {
			stats.TotalUsers += n
		}
		stats.TotalProviders = byRole[entity.RoleProvider]
		stats.TotalClients = byRole[entity.RoleClient]

		messages, err := repoFactory.MessageRepo().Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count messages")
		}
		stats.MessagesSent = messages

		byLocation, err := profileRepo.CountProvidersByLocationType(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count providers by location type")
		}
		if byLocation == nil {
			byLocation = []entity.LocationTypeCount{}
		}
		stats.ProvidersByLocationType = byLocation

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to compute admin stats")
	}

	return stats, nil
}

// RecordPageVisit counts one landing page view.
func (srv *adminService) RecordPageVisit(ctx context.Context) error {
	if err := srv.visitCounter.Increment(ctx); err != nil {
		return errors.Wrap(err, "failed to record page visit")
	}

	return nil
}

// PageVisits returns the total number of recorded page views.
func (srv *adminService) PageVisits(ctx context.Context) (int64, error) {
	count, err := srv.visitCounter.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count page visits")
	}

	return count, nil
}

// ListProfiles returns every profile, newest first.
func (srv *adminService) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	var profiles []*entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
		}
		profiles = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list all profiles")
	}

	return profiles, nil
}

// CreateDemoProfile creates a profile that is not linked to a real identity.
func (srv *adminService) CreateDemoProfile(ctx context.Context, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	externalID := demoExternalIDPrefix + uuid.New().String()
	srv.log(ctx).Info("Creating demo profile", slog.String("username", input.Username), slog.String("externalID", externalID))

	profile, err := createProfile(ctx, srv.txManager, externalID, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create demo profile")
	}

	return profile, nil
}

// UpdateProfile edits any profile, including its username.
func (srv *adminService) UpdateProfile(ctx context.Context, profileID int64, input *usecase.AdminUpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Admin updating profile", slog.Int64("profileID", profileID))

	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		if input.Username != nil {
			if _, err := changeUsername(ctx, profileRepo, profileID, *input.Username, srv.now()); err != nil {
				return err
			}
		}

		profile, err := findProfile(ctx, profileRepo, profileID)
		if err != nil {
			return err
		}

		if err := applyProfileUpdate(ctx, repoFactory.ServiceRepo(), profile, &input.UpdateProfileInput); err != nil {
			return err
		}

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updated = profile

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile as admin")
	}

	return updated, nil
}

// DeleteProfile removes any profile with the same cascade as a self-delete.
func (srv *adminService) DeleteProfile(ctx context.Context, profileID int64) error {
	srv.log(ctx).Info("Admin deleting profile", slog.Int64("profileID", profileID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return deleteProfileCascade(ctx, repoFactory, profileID)
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete profile as admin")
	}

	srv.events.Publish(ctx, service.EventProfileDeleted, profileID, map[string]string{"by": "admin"})

	return nil
}
