package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
	"beautymap/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(txManager repository.TransactionManager, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListServices returns a provider's services.
func (srv *catalogService) ListServices(ctx context.Context, providerID int64) ([]*entity.Service, error) {
	var services []*entity.Service
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ServiceRepo().ListByProvider(ctx, providerID)
		if err != nil {
			return errors.Wrap(err, "failed to list services")
		}
		services = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider services")
	}

	return services, nil
}

// CreateService adds a service to a provider's catalog.
func (srv *catalogService) CreateService(ctx context.Context, providerID int64, input *usecase.ServiceInput) (*entity.Service, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("service name is required")
	}
	if input.DurationMinutes != nil && *input.DurationMinutes <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("duration must be positive")
	}

	srv.log(ctx).Info("Creating service", slog.Int64("providerID", providerID), slog.String("name", name))

	created := &entity.Service{
		ProviderID:      providerID,
		Name:            name,
		Description:     input.Description,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		provider, err := findProfile(ctx, repoFactory.ProfileRepo(), providerID)
		if err != nil {
			return err
		}
		if !provider.IsProvider() {
			return domainerrors.ErrNotProvider
		}

		serviceRepo := repoFactory.ServiceRepo()
		if err := ensureServiceNameFree(ctx, serviceRepo, providerID, name, 0); err != nil {
			return err
		}

		return serviceRepo.Create(ctx, created)
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	return created, nil
}

// UpdateService applies a partial update to any service.
func (srv *catalogService) UpdateService(ctx context.Context, serviceID int64, input *usecase.UpdateServiceInput) (*entity.Service, error) {
	srv.log(ctx).Info("Updating service", slog.Int64("serviceID", serviceID))

	var updated *entity.Service
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		svc, err := findService(ctx, serviceRepo, serviceID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return domainerrors.ErrValidationFailed.WrapMessage("service name is required")
			}
			if err := ensureServiceNameFree(ctx, serviceRepo, svc.ProviderID, name, svc.ID); err != nil {
				return err
			}
			svc.Name = name
		}
		if input.Description != nil {
			svc.Description = input.Description
		}
		if input.Price != nil {
			svc.Price = input.Price
		}
		if input.DurationMinutes != nil {
			if *input.DurationMinutes <= 0 {
				return domainerrors.ErrValidationFailed.WrapMessage("duration must be positive")
			}
			svc.DurationMinutes = input.DurationMinutes
		}

		if err := serviceRepo.Update(ctx, svc); err != nil {
			return errors.Wrap(err, "failed to update service")
		}
		updated = svc

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update service")
	}

	return updated, nil
}

// DeleteService removes a service. Only its provider or an admin may do so.
func (srv *catalogService) DeleteService(ctx context.Context, actor *entity.Profile, serviceID int64) error {
	if actor == nil {
		return domainerrors.ErrUnauthorized
	}

	srv.log(ctx).Info("Deleting service", slog.Int64("serviceID", serviceID), slog.Int64("actorID", actor.ID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		svc, err := findService(ctx, serviceRepo, serviceID)
		if err != nil {
			return err
		}
		if svc.ProviderID != actor.ID && !actor.IsAdmin {
			return domainerrors.ErrForbidden.WrapMessage("service belongs to another provider")
		}

		return serviceRepo.Delete(ctx, serviceID)
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete service")
	}

	return nil
}

func findService(ctx context.Context, serviceRepo repository.ServiceRepository, serviceID int64) (*entity.Service, error) {
	svc, err := serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	return svc, nil
}

// ensureServiceNameFree fails with ErrServiceNameTaken when the provider already
// offers name under another service id. Pass exceptID 0 for new services.
func ensureServiceNameFree(ctx context.Context, serviceRepo repository.ServiceRepository, providerID int64, name string, exceptID int64) error {
	existing, err := serviceRepo.FindByNameAndProvider(ctx, name, providerID)
	switch {
	case errors.Is(err, repository.ErrServiceNotFound):
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to check service name")
	case existing.ID != exceptID:
		return domainerrors.ErrServiceNameTaken
	default:
		return nil
	}
}
