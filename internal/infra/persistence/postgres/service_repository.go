package postgres

import (
	"context"
	"strings"

	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
	"beautymap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// serviceRepository implements the repository.ServiceRepository interface using GORM.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (repo *serviceRepository) FindByID(ctx context.Context, id int64) (*entity.Service, error) {
	var serviceM model.ServiceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by id")
	}

	return toServiceDomain(&serviceM), nil
}

// FindByNameAndProvider compares names with LOWER() on both sides so it agrees
// with the (provider_id, lower(name)) unique index.
func (repo *serviceRepository) FindByNameAndProvider(ctx context.Context, name string, providerID int64) (*entity.Service, error) {
	var serviceM model.ServiceModel
	if err := repo.db.WithContext(ctx).
		Where("provider_id = ? AND LOWER(name) = ?", providerID, strings.ToLower(strings.TrimSpace(name))).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by name")
	}

	return toServiceDomain(&serviceM), nil
}

func (repo *serviceRepository) ListByProvider(ctx context.Context, providerID int64) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel
	if err := repo.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("id ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services by provider")
	}

	return toServiceDomains(serviceModels), nil
}

func (repo *serviceRepository) ListByProviders(ctx context.Context, providerIDs []int64) ([]*entity.Service, error) {
	if len(providerIDs) == 0 {
		return []*entity.Service{}, nil
	}

	var serviceModels []*model.ServiceModel
	if err := repo.db.WithContext(ctx).
		Where("provider_id IN ?", providerIDs).
		Order("provider_id ASC, id ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services by providers")
	}

	return toServiceDomains(serviceModels), nil
}

func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrServiceNameTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid provider reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID

	return nil
}

// Update patches every field of the service in place. The provider never changes.
func (repo *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", service.ID).
		Updates(map[string]any{
			"name":             service.Name,
			"description":      service.Description,
			"price":            service.Price,
			"duration_minutes": service.DurationMinutes,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrServiceNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

func (repo *serviceRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ServiceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

func (repo *serviceRepository) DeleteByProvider(ctx context.Context, providerID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Delete(&model.ServiceModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete provider services")
	}

	return nil
}

// --- Mapper Functions ---

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:              data.ID,
		ProviderID:      data.ProviderID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		DurationMinutes: data.DurationMinutes,
	}
}

func toServiceDomains(models []*model.ServiceModel) []*entity.Service {
	services := make([]*entity.Service, 0, len(models))
	for _, m := range models {
		services = append(services, toServiceDomain(m))
	}

	return services
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	return &model.ServiceModel{
		ID:              data.ID,
		ProviderID:      data.ProviderID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		DurationMinutes: data.DurationMinutes,
	}
}
