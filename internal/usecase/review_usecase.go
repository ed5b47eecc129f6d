package usecase

import (
	"context"

	"beautymap/internal/domain/entity"
)

// ReviewUsecase maintains the review ledger and the provider rating derived from it.
type ReviewUsecase interface {
	ListReviews(ctx context.Context, providerID int64) ([]*entity.Review, error)
	// CreateReview records clientID's review and recomputes the provider rating in the same transaction.
	CreateReview(ctx context.Context, clientID int64, input *CreateReviewInput) (*entity.Review, error)
	// DeleteReview removes a review written by actor, or any review when actor is an admin.
	DeleteReview(ctx context.Context, actor *entity.Profile, reviewID int64) error
	CheckReview(ctx context.Context, clientID, providerID int64) (*ReviewCheck, error)
}

// CreateReviewInput defines the data required to review a provider.
type CreateReviewInput struct {
	ProviderID  int64   `json:"providerId" validate:"required,gt=0"`
	Rating      int     `json:"rating" validate:"required,min=1,max=5"`
	Comment     *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
	DisplayName *string `json:"displayName,omitempty" validate:"omitempty,max=50"`
}

// ReviewCheck tells a client whether they already reviewed a provider.
type ReviewCheck struct {
	HasReviewed bool   `json:"hasReviewed"`
	ReviewID    *int64 `json:"reviewId,omitempty"`
}
