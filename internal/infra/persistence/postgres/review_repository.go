package postgres

import (
	"context"

	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
	"beautymap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *reviewRepository) FindByProviderAndClient(ctx context.Context, providerID, clientID int64) (*entity.Review, error) {
	return repo.first(repo.db.WithContext(ctx).Where("provider_id = ? AND client_id = ?", providerID, clientID))
}

// ListByProvider orders newest first; ID breaks ties between reviews created in the same instant.
func (repo *reviewRepository) ListByProvider(ctx context.Context, providerID int64) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC, id DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by provider")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, m := range reviewModels {
		reviews = append(reviews, toReviewDomain(m))
	}

	return reviews, nil
}

func (repo *reviewRepository) ListRatingsByProvider(ctx context.Context, providerID int64) ([]int, error) {
	var ratings []int
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("provider_id = ?", providerID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read provider ratings")
	}

	return ratings, nil
}

func (repo *reviewRepository) ListProviderIDsByClient(ctx context.Context, clientID int64) ([]int64, error) {
	var providerIDs []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Distinct("provider_id").
		Where("client_id = ?", clientID).
		Order("provider_id ASC").
		Pluck("provider_id", &providerIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviewed providers")
	}

	return providerIDs, nil
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyReviewed
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (repo *reviewRepository) DeleteByProfile(ctx context.Context, profileID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("provider_id = ? OR client_id = ?", profileID, profileID).
		Delete(&model.ReviewModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile reviews")
	}

	return nil
}

func (repo *reviewRepository) first(query *gorm.DB) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := query.First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:          data.ID,
		ProviderID:  data.ProviderID,
		ClientID:    data.ClientID,
		DisplayName: data.DisplayName,
		Rating:      data.Rating,
		Comment:     data.Comment,
		CreatedAt:   data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	displayName := data.DisplayName
	if displayName == "" {
		displayName = entity.DefaultReviewDisplayName
	}

	return &model.ReviewModel{
		ID:          data.ID,
		ProviderID:  data.ProviderID,
		ClientID:    data.ClientID,
		DisplayName: displayName,
		Rating:      data.Rating,
		Comment:     data.Comment,
		CreatedAt:   data.CreatedAt,
	}
}
