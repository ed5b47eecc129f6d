package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	events    *EventDispatcher
	logger    *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Events    *EventDispatcher
	Logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager: params.TxManager,
		events:    params.Events,
		logger:    params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReviews returns a provider's reviews, newest first.
func (srv *reviewService) ListReviews(ctx context.Context, providerID int64) ([]*entity.Review, error) {
	var reviews []*entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ReviewRepo().ListByProvider(ctx, providerID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider reviews")
	}

	return reviews, nil
}

// CreateReview inserts the review and recomputes the provider's rating while
// holding a lock on the provider row.
func (srv *reviewService) CreateReview(ctx context.Context, clientID int64, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.ProviderID == clientID {
		return nil, domainerrors.ErrSelfReview
	}
	if !rating.Valid(input.Rating) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	srv.log(ctx).Info("Creating review",
		slog.Int64("providerID", input.ProviderID),
		slog.Int64("clientID", clientID),
		slog.Int("rating", input.Rating))

	review := &entity.Review{
		ProviderID:  input.ProviderID,
		ClientID:    clientID,
		DisplayName: entity.DefaultReviewDisplayName,
		Rating:      input.Rating,
		Comment:     input.Comment,
	}
	if input.DisplayName != nil && strings.TrimSpace(*input.DisplayName) != "" {
		review.DisplayName = strings.TrimSpace(*input.DisplayName)
	}

	var notification *entity.Notification
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		provider, err := repoFactory.ProfileRepo().FindByIDForUpdate(ctx, input.ProviderID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("provider not found")
			}

			return errors.Wrap(err, "failed to lock provider")
		}
		if !provider.IsProvider() {
			return domainerrors.ErrProfileNotFound.WrapMessage("provider not found")
		}

		if _, err := reviewRepo.FindByProviderAndClient(ctx, input.ProviderID, clientID); err == nil {
			return domainerrors.ErrAlreadyReviewed
		} else if !errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(err, "failed to check existing review")
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		if err := recomputeRating(ctx, repoFactory, input.ProviderID); err != nil {
			return err
		}

		notification = reviewNotification(review)
		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create review notification")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.events.Publish(ctx, service.EventReviewCreated, review.ProviderID, map[string]string{
		"reviewId": strconv.FormatInt(review.ID, 10),
		"clientId": strconv.FormatInt(clientID, 10),
		"rating":   strconv.Itoa(review.Rating),
	})
	srv.events.Notify(ctx, notification)

	return review, nil
}

// DeleteReview removes a review and recomputes the provider's rating.
func (srv *reviewService) DeleteReview(ctx context.Context, actor *entity.Profile, reviewID int64) error {
	if actor == nil {
		return domainerrors.ErrUnauthorized
	}

	srv.log(ctx).Info("Deleting review", slog.Int64("reviewID", reviewID), slog.Int64("actorID", actor.ID))

	var providerID int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound
			}

			return errors.Wrap(err, "failed to find review")
		}
		if review.ClientID != actor.ID && !actor.IsAdmin {
			return domainerrors.ErrForbidden.WrapMessage("only the author can delete this review")
		}
		providerID = review.ProviderID

		if _, err := repoFactory.ProfileRepo().FindByIDForUpdate(ctx, providerID); err != nil {
			return errors.Wrap(err, "failed to lock provider")
		}

		if err := reviewRepo.Delete(ctx, reviewID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return recomputeRating(ctx, repoFactory, providerID)
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	srv.events.Publish(ctx, service.EventReviewDeleted, providerID, map[string]string{
		"reviewId": strconv.FormatInt(reviewID, 10),
	})

	return nil
}

// CheckReview tells whether the client has already reviewed the provider.
func (srv *reviewService) CheckReview(ctx context.Context, clientID, providerID int64) (*usecase.ReviewCheck, error) {
	check := &usecase.ReviewCheck{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		review, err := repoFactory.ReviewRepo().FindByProviderAndClient(ctx, providerID, clientID)
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find review")
		}

		check.HasReviewed = true
		check.ReviewID = &review.ID

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to check review")
	}

	return check, nil
}

func reviewNotification(review *entity.Review) *entity.Notification {
	link := "/profile/" + strconv.FormatInt(review.ProviderID, 10)

	return &entity.Notification{
		ProfileID: review.ProviderID,
		Type:      entity.NotificationTypeReview,
		Title:     "New review",
		Content:   fmt.Sprintf("%s left you a %d-star review", review.DisplayName, review.Rating),
		Link:      &link,
	}
}
