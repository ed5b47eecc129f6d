// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/rating"
	"beautymap/internal/domain/repository"
	"beautymap/internal/domain/service"
	"beautymap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 30
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	qrCode    service.QRCodeService
	events    *EventDispatcher
	logger    *slog.Logger
	now       func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRCode    service.QRCodeService
	Events    *EventDispatcher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		qrCode:    params.QRCode,
		events:    params.Events,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a profile with its services and reviews.
func (srv *profileService) GetProfile(ctx context.Context, profileID int64) (*usecase.ProfileDetail, error) {
	srv.log(ctx).Debug("Getting profile", slog.Int64("profileID", profileID))

	detail := &usecase.ProfileDetail{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := findProfile(ctx, repoFactory.ProfileRepo(), profileID)
		if err != nil {
			return err
		}
		detail.Profile = profile

		services, err := repoFactory.ServiceRepo().ListByProvider(ctx, profileID)
		if err != nil {
			return errors.Wrap(err, "failed to list services")
		}
		detail.Services = services

		reviews, err := repoFactory.ReviewRepo().ListByProvider(ctx, profileID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		detail.Reviews = reviews

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return detail, nil
}

// GetByExternalID resolves the profile owned by an identity provider subject.
func (srv *profileService) GetByExternalID(ctx context.Context, externalID string) (*entity.Profile, error) {
	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().FindByExternalID(ctx, externalID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("no profile for this account")
			}

			return errors.Wrap(err, "failed to find profile")
		}
		profile = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile by external id")
	}

	return profile, nil
}

// CreateProfile onboards a new identity.
func (srv *profileService) CreateProfile(ctx context.Context, externalID string, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Creating profile", slog.String("username", input.Username), slog.Any("role", input.Role))

	profile, err := createProfile(ctx, srv.txManager, externalID, input)
	if err != nil {
		srv.log(ctx).Warn("Failed to create profile", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}

// UpdateProfile applies a partial update to the caller's own profile.
func (srv *profileService) UpdateProfile(ctx context.Context, profileID int64, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating profile", slog.Int64("profileID", profileID))

	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := findProfile(ctx, profileRepo, profileID)
		if err != nil {
			return err
		}

		if err := applyProfileUpdate(ctx, repoFactory.ServiceRepo(), profile, input); err != nil {
			return err
		}

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updated = profile

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return updated, nil
}

// UpdateUsername changes the caller's public handle.
func (srv *profileService) UpdateUsername(ctx context.Context, profileID int64, username string) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating username", slog.Int64("profileID", profileID), slog.String("username", username))

	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := changeUsername(ctx, repoFactory.ProfileRepo(), profileID, username, srv.now())
		if err != nil {
			return err
		}
		updated = profile

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update username")
	}

	return updated, nil
}

// DeleteProfile removes the caller's profile and everything that references it.
func (srv *profileService) DeleteProfile(ctx context.Context, profileID int64) error {
	srv.log(ctx).Info("Deleting profile", slog.Int64("profileID", profileID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return deleteProfileCascade(ctx, repoFactory, profileID)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete profile", slog.Int64("profileID", profileID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete profile")
	}

	srv.events.Publish(ctx, service.EventProfileDeleted, profileID, nil)

	return nil
}

// CheckUsername reports whether the exact username is still free.
func (srv *profileService) CheckUsername(ctx context.Context, username string) (bool, error) {
	var taken bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		exists, err := repoFactory.ProfileRepo().ExistsByUsername(ctx, username)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		taken = exists

		return nil
	})

	if err != nil {
		return false, errors.Wrap(err, "failed to check username availability")
	}

	return !taken, nil
}

// ProfileQRCode renders a PNG share code pointing at the public profile page.
func (srv *profileService) ProfileQRCode(ctx context.Context, profileID int64) ([]byte, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := findProfile(ctx, repoFactory.ProfileRepo(), profileID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile for qr code")
	}

	png, err := srv.qrCode.GenerateProfileQR(profileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate profile qr code")
	}

	return png, nil
}

func findProfile(ctx context.Context, profileRepo repository.ProfileRepository, profileID int64) (*entity.Profile, error) {
	profile, err := profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile " + strconv.FormatInt(profileID, 10) + " not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

func createProfile(
	ctx context.Context,
	txManager repository.TransactionManager,
	externalID string,
	input *usecase.CreateProfileInput,
) (*entity.Profile, error) {
	username, err := normalizeUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("role must be client or provider")
	}
	if strings.TrimSpace(externalID) == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("missing identity")
	}

	profile := &entity.Profile{
		ExternalID: externalID,
		Username:   username,
		Role:       input.Role,
	}
	if err := applyProfileDetails(profile, &input.ProfileDetailsInput); err != nil {
		return nil, err
	}

	err = txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		if _, err := profileRepo.FindByExternalID(ctx, externalID); err == nil {
			return domainerrors.ErrProfileAlreadyExists
		} else if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to find profile by external id")
		}

		taken, err := profileRepo.ExistsByUsername(ctx, username)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if taken {
			return domainerrors.ErrUsernameTaken
		}

		return profileRepo.Create(ctx, profile)
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func changeUsername(
	ctx context.Context,
	profileRepo repository.ProfileRepository,
	profileID int64,
	username string,
	changedAt time.Time,
) (*entity.Profile, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}

	profile, err := findProfile(ctx, profileRepo, profileID)
	if err != nil {
		return nil, err
	}
	if profile.Username == username {
		return profile, nil
	}

	if _, err := profileRepo.FindByUsername(ctx, username); err == nil {
		return nil, domainerrors.ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to check username")
	}

	if err := profileRepo.UpdateUsername(ctx, profileID, username, changedAt); err != nil {
		return nil, errors.Wrap(err, "failed to update username")
	}

	profile.Username = username
	profile.UsernameChangedAt = &changedAt

	return profile, nil
}

// normalizeUsername trims the username and checks its length in runes.
func normalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if n := utf8.RuneCountInString(username); n < minUsernameLength || n > maxUsernameLength {
		return "", domainerrors.ErrValidationFailed.WrapMessage("username must be between 3 and 30 characters")
	}

	return username, nil
}

// applyProfileUpdate must run inside the transaction that persists the profile.
// A provider that still owns services cannot become a client.
func applyProfileUpdate(
	ctx context.Context,
	serviceRepo repository.ServiceRepository,
	profile *entity.Profile,
	input *usecase.UpdateProfileInput,
) error {
	if input.Role != nil {
		if !input.Role.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("role must be client or provider")
		}
		if profile.IsProvider() && *input.Role != entity.RoleProvider {
			services, err := serviceRepo.ListByProvider(ctx, profile.ID)
			if err != nil {
				return errors.Wrap(err, "failed to list services")
			}
			if len(services) > 0 {
				return domainerrors.ErrProviderHasServices
			}
		}
		profile.Role = *input.Role
	}

	if input.ClearLocationType && input.LocationType != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("locationType cannot be set and cleared at once")
	}
	if input.ClearCoordinates && (input.Latitude != nil || input.Longitude != nil) {
		return domainerrors.ErrValidationFailed.WrapMessage("coordinates cannot be set and cleared at once")
	}
	if input.ClearLocationType {
		profile.LocationType = nil
	}
	if input.ClearCoordinates {
		profile.Latitude = nil
		profile.Longitude = nil
	}

	return applyProfileDetails(profile, &input.ProfileDetailsInput)
}

func applyProfileDetails(profile *entity.Profile, input *usecase.ProfileDetailsInput) error {
	if input.LocationType != nil {
		if !input.LocationType.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown location type")
		}
		locationType := *input.LocationType
		profile.LocationType = &locationType
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Instagram != nil {
		profile.Instagram = *input.Instagram
	}
	if input.ProfileImageURL != nil {
		profile.ProfileImageURL = *input.ProfileImageURL
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.Latitude != nil {
		lat := *input.Latitude
		profile.Latitude = &lat
	}
	if input.Longitude != nil {
		lng := *input.Longitude
		profile.Longitude = &lng
	}

	return nil
}

// deleteProfileCascade removes every row referencing the profile, then the
// profile itself. Providers the profile reviewed get their rating recomputed.
// It must run inside a single transaction.
func deleteProfileCascade(ctx context.Context, repoFactory repository.RepositoryFactory, profileID int64) error {
	profileRepo := repoFactory.ProfileRepo()
	reviewRepo := repoFactory.ReviewRepo()

	if _, err := profileRepo.FindByIDForUpdate(ctx, profileID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to lock profile")
	}

	if err := repoFactory.ServiceRepo().DeleteByProvider(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete services")
	}

	reviewedProviders, err := reviewRepo.ListProviderIDsByClient(ctx, profileID)
	if err != nil {
		return errors.Wrap(err, "failed to list reviewed providers")
	}

	if err := reviewRepo.DeleteByProfile(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete reviews")
	}

	for _, providerID := range reviewedProviders {
		if providerID == profileID {
			continue
		}
		if _, err := profileRepo.FindByIDForUpdate(ctx, providerID); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				continue
			}

			return errors.Wrap(err, "failed to lock reviewed provider")
		}
		if err := recomputeRating(ctx, repoFactory, providerID); err != nil {
			return err
		}
	}

	if err := repoFactory.MessageRepo().DeleteByProfile(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete messages")
	}

	if err := repoFactory.NotificationRepo().DeleteByProfile(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete notifications")
	}

	if err := profileRepo.Delete(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete profile row")
	}

	return nil
}

// recomputeRating rebuilds a provider's rating aggregate from its reviews.
func recomputeRating(ctx context.Context, repoFactory repository.RepositoryFactory, providerID int64) error {
	ratings, err := repoFactory.ReviewRepo().ListRatingsByProvider(ctx, providerID)
	if err != nil {
		return errors.Wrap(err, "failed to list ratings")
	}

	mean, count := rating.Aggregate(ratings)
	if err := repoFactory.ProfileRepo().UpdateRating(ctx, providerID, mean, count); err != nil {
		return errors.Wrap(err, "failed to update rating")
	}

	return nil
}
