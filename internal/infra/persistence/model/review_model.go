package model

import "time"

// ReviewModel mirrors the 'reviews' table. A client reviews a provider at most once.
type ReviewModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	ProviderID  int64   `gorm:"not null;uniqueIndex:idx_reviews_provider_client;index"`
	ClientID    int64   `gorm:"not null;uniqueIndex:idx_reviews_provider_client;index"`
	DisplayName string  `gorm:"type:varchar(100);not null;default:'Anonymous'"`
	Rating      int     `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5"`
	Comment     *string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
