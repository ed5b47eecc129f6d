package usecase

import (
	"context"

	"beautymap/internal/domain/entity"
)

// CatalogUsecase manages the services a provider offers.
type CatalogUsecase interface {
	ListServices(ctx context.Context, providerID int64) ([]*entity.Service, error)
	// CreateService adds a service to a provider. Names are unique per provider, ignoring case.
	CreateService(ctx context.Context, providerID int64, input *ServiceInput) (*entity.Service, error)
	UpdateService(ctx context.Context, serviceID int64, input *UpdateServiceInput) (*entity.Service, error)
	// DeleteService removes a service owned by actor, or any service when actor is an admin.
	DeleteService(ctx context.Context, actor *entity.Profile, serviceID int64) error
}

// ServiceInput defines the data required to create a service.
type ServiceInput struct {
	Name            string  `json:"name" validate:"required,max=100"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price           *string `json:"price,omitempty" validate:"omitempty,max=50"`
	DurationMinutes *int    `json:"duration,omitempty" validate:"omitempty,gt=0"`
}

// UpdateServiceInput defines a partial service update.
type UpdateServiceInput struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price           *string `json:"price,omitempty" validate:"omitempty,max=50"`
	DurationMinutes *int    `json:"duration,omitempty" validate:"omitempty,gt=0"`
}
