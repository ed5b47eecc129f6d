package postgres

import (
	"context"
	"time"

	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
	"beautymap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type pageVisitRepository struct {
	db *gorm.DB
}

// NewPageVisitRepository is the constructor for pageVisitRepository.
func NewPageVisitRepository(db *gorm.DB) repository.PageVisitRepository {
	return &pageVisitRepository{db: db}
}

func (repo *pageVisitRepository) Record(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Create(&model.PageVisitModel{VisitedAt: time.Now()}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record page visit")
	}

	return nil
}

func (repo *pageVisitRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PageVisitModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count page visits")
	}

	return count, nil
}
