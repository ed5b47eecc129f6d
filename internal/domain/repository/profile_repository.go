// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"beautymap/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Profile, error)

	// FindByIDForUpdate retrieves a profile and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Profile, error)

	// FindByExternalID retrieves the profile linked to an identity provider subject.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Profile, error)

	// FindByUsername retrieves a profile by exact (case-sensitive) username.
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)

	// ExistsByUsername reports whether the exact username is already in use.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ListAll returns every profile, newest first.
	ListAll(ctx context.Context) ([]*entity.Profile, error)

	// ListByRole returns every profile with the given role, ordered by ID.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error)

	// CountByRole returns the number of profiles per role.
	CountByRole(ctx context.Context) (map[entity.Role]int64, error)

	// CountProvidersByLocationType groups providers by location type, skipping providers without one.
	CountProvidersByLocationType(ctx context.Context) ([]entity.LocationTypeCount, error)

	// Create persists a new profile. Rating and review count always start at zero.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update writes the editable fields. ExternalID, Username and the rating aggregate are left untouched.
	Update(ctx context.Context, profile *entity.Profile) error

	// UpdateUsername changes the username and records when it happened.
	UpdateUsername(ctx context.Context, id int64, username string, changedAt time.Time) error

	// UpdateRating persists the derived rating aggregate.
	UpdateRating(ctx context.Context, id int64, rating float64, reviewCount int) error

	// Delete removes the profile row only. Dependents must be removed first.
	Delete(ctx context.Context, id int64) error
}
