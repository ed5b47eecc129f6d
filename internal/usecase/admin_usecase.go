package usecase

import (
	"context"

	"beautymap/internal/domain/entity"
)

// AdminUsecase backs the admin dashboard.
type AdminUsecase interface {
	Stats(ctx context.Context) (*entity.AdminStats, error)
	RecordPageVisit(ctx context.Context) error
	PageVisits(ctx context.Context) (int64, error)
	ListProfiles(ctx context.Context) ([]*entity.Profile, error)
	// CreateDemoProfile creates a profile bound to a generated demo identity.
	CreateDemoProfile(ctx context.Context, input *CreateProfileInput) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, profileID int64, input *AdminUpdateProfileInput) (*entity.Profile, error)
	DeleteProfile(ctx context.Context, profileID int64) error
}
