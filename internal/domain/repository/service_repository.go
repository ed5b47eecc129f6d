package repository

import (
	"context"
	"errors"

	"beautymap/internal/domain/entity"
)

// ErrServiceNotFound is returned when a service is not found.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines persistence operations for the service catalog.
type ServiceRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Service, error)

	// FindByNameAndProvider matches the name case-insensitively.
	FindByNameAndProvider(ctx context.Context, name string, providerID int64) (*entity.Service, error)

	ListByProvider(ctx context.Context, providerID int64) ([]*entity.Service, error)

	// ListByProviders returns the services of all given providers in one query.
	ListByProviders(ctx context.Context, providerIDs []int64) ([]*entity.Service, error)

	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id int64) error

	// DeleteByProvider removes every service owned by the provider.
	DeleteByProvider(ctx context.Context, providerID int64) error
}
