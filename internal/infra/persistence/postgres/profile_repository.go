package postgres

import (
	"context"
	"time"

	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
	"beautymap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
// It returns the repository as a repository.ProfileRepository interface, adhering to dependency inversion.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByID retrieves a single profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id int64) (*entity.Profile, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("id = ?", id), "failed to find profile by id")
}

// FindByIDForUpdate retrieves a profile and holds a row lock until the transaction ends.
// Drivers without row-level locking (SQLite) serialise writers on the database instead.
func (repo *profileRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Profile, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id)

	return repo.first(ctx, query, "failed to lock profile")
}

func (repo *profileRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Profile, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("external_id = ?", externalID), "failed to find profile by external id")
}

func (repo *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("username = ?", username), "failed to find profile by username")
}

// ExistsByUsername performs an exact, case-sensitive match.
func (repo *profileRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check username")
	}

	return count > 0, nil
}

// ListAll returns every profile, newest first.
func (repo *profileRepository) ListAll(ctx context.Context) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return toProfileDomains(profileModels), nil
}

func (repo *profileRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("role = ?", string(role)).
		Order("id ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by role")
	}

	return toProfileDomains(profileModels), nil
}

func (repo *profileRepository) CountByRole(ctx context.Context) (map[entity.Role]int64, error) {
	var rows []struct {
		Role  string
		Count int64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count profiles by role")
	}

	counts := make(map[entity.Role]int64, len(rows))
	for _, row := range rows {
		counts[entity.Role(row.Role)] = row.Count
	}

	return counts, nil
}

// CountProvidersByLocationType excludes providers without a location type.
func (repo *profileRepository) CountProvidersByLocationType(ctx context.Context) ([]entity.LocationTypeCount, error) {
	var rows []struct {
		LocationType string
		Count        int64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Select("location_type, COUNT(*) AS count").
		Where("role = ? AND location_type IS NOT NULL", string(entity.RoleProvider)).
		Group("location_type").
		Order("location_type ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count providers by location type")
	}

	counts := make([]entity.LocationTypeCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.LocationTypeCount{
			LocationType: entity.LocationType(row.LocationType),
			Count:        row.Count,
		})
	}

	return counts, nil
}

// Create persists a new profile. The rating aggregate always starts empty.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	profileM.Rating = 0
	profileM.ReviewCount = 0

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("external identity or username already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.Rating = 0
	profile.ReviewCount = 0

	return nil
}

// Update writes the editable columns only.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"role":              profileM.Role,
			"is_admin":          profileM.IsAdmin,
			"bio":               profileM.Bio,
			"instagram":         profileM.Instagram,
			"profile_image_url": profileM.ProfileImageURL,
			"location":          profileM.Location,
			"location_type":     profileM.LocationType,
			"latitude":          profileM.Latitude,
			"longitude":         profileM.Longitude,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (repo *profileRepository) UpdateUsername(ctx context.Context, id int64, username string, changedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"username":            username,
			"username_changed_at": changedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUsernameTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update username")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateRating is the only write path for the rating aggregate.
func (repo *profileRepository) UpdateRating(ctx context.Context, id int64, rating float64, reviewCount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":       rating,
			"review_count": reviewCount,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (repo *profileRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProfileModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (repo *profileRepository) first(ctx context.Context, query *gorm.DB, msg string) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := query.First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toProfileDomain(&profileM), nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	profile := &entity.Profile{
		ID:                data.ID,
		ExternalID:        data.ExternalID,
		Username:          data.Username,
		UsernameChangedAt: data.UsernameChangedAt,
		Role:              entity.Role(data.Role),
		IsAdmin:           data.IsAdmin,
		Bio:               data.Bio,
		Instagram:         data.Instagram,
		ProfileImageURL:   data.ProfileImageURL,
		Location:          data.Location,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		Rating:            data.Rating,
		ReviewCount:       data.ReviewCount,
	}
	if data.LocationType != nil {
		lt := entity.LocationType(*data.LocationType)
		profile.LocationType = &lt
	}

	return profile
}

func toProfileDomains(models []*model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(models))
	for _, m := range models {
		profiles = append(profiles, toProfileDomain(m))
	}

	return profiles
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	profileM := &model.ProfileModel{
		ID:                data.ID,
		ExternalID:        data.ExternalID,
		Username:          data.Username,
		UsernameChangedAt: data.UsernameChangedAt,
		Role:              string(data.Role),
		IsAdmin:           data.IsAdmin,
		Bio:               data.Bio,
		Instagram:         data.Instagram,
		ProfileImageURL:   data.ProfileImageURL,
		Location:          data.Location,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		Rating:            data.Rating,
		ReviewCount:       data.ReviewCount,
	}
	if data.LocationType != nil {
		lt := string(*data.LocationType)
		profileM.LocationType = &lt
	}

	return profileM
}
