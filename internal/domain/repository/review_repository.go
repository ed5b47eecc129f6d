package repository

import (
	"context"
	"errors"

	"beautymap/internal/domain/entity"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines persistence operations for the review ledger.
type ReviewRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindByProviderAndClient(ctx context.Context, providerID, clientID int64) (*entity.Review, error)

	// ListByProvider returns the provider's reviews, newest first.
	ListByProvider(ctx context.Context, providerID int64) ([]*entity.Review, error)

	// ListRatingsByProvider returns the rating of every review of the provider.
	ListRatingsByProvider(ctx context.Context, providerID int64) ([]int, error)

	// ListProviderIDsByClient returns the distinct providers the client has reviewed.
	ListProviderIDsByClient(ctx context.Context, clientID int64) ([]int64, error)

	Create(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int64) error

	// DeleteByProfile removes every review the profile authored or received.
	DeleteByProfile(ctx context.Context, profileID int64) error
}
