// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"beautymap/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns the public profile page: the profile with its services and reviews.
	GetProfile(ctx context.Context, profileID int64) (*ProfileDetail, error)
	GetByExternalID(ctx context.Context, externalID string) (*entity.Profile, error)
	// CreateProfile onboards the identity behind externalID. Each identity owns at most one profile.
	CreateProfile(ctx context.Context, externalID string, input *CreateProfileInput) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, profileID int64, input *UpdateProfileInput) (*entity.Profile, error)
	UpdateUsername(ctx context.Context, profileID int64, username string) (*entity.Profile, error)
	// DeleteProfile removes the profile together with its services, reviews, messages and notifications.
	DeleteProfile(ctx context.Context, profileID int64) error
	CheckUsername(ctx context.Context, username string) (bool, error)
	ProfileQRCode(ctx context.Context, profileID int64) ([]byte, error)
}

// ProfileDetail is a profile with everything shown on its public page.
type ProfileDetail struct {
	Profile  *entity.Profile
	Services []*entity.Service
	Reviews  []*entity.Review
}

// --- Input DTOs ---

// ProfileDetailsInput holds the freely editable profile fields.
type ProfileDetailsInput struct {
	Bio             *string              `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Instagram       *string              `json:"instagram,omitempty" validate:"omitempty,max=100"`
	ProfileImageURL *string              `json:"profileImageUrl,omitempty" validate:"omitempty,max=2048"`
	Location        *string              `json:"location,omitempty" validate:"omitempty,max=255"`
	LocationType    *entity.LocationType `json:"locationType,omitempty" validate:"omitempty,oneof=house apartment studio rented_space mobile"`
	Latitude        *float64             `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64             `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// CreateProfileInput defines the data required to create a profile.
type CreateProfileInput struct {
	Username string      `json:"username" validate:"required,min=3,max=30"`
	Role     entity.Role `json:"role" validate:"required,oneof=client provider"`
	ProfileDetailsInput
}

// UpdateProfileInput defines a partial profile update. Username and external identity are not editable here.
// A nil field is left unchanged; the Clear flags reset the nullable location fields.
type UpdateProfileInput struct {
	Role              *entity.Role `json:"role,omitempty" validate:"omitempty,oneof=client provider"`
	ClearLocationType bool         `json:"clearLocationType,omitempty"`
	ClearCoordinates  bool         `json:"clearCoordinates,omitempty"`
	ProfileDetailsInput
}

// AdminUpdateProfileInput lets an admin edit any profile, username included.
type AdminUpdateProfileInput struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	UpdateProfileInput
}
