package model

import "time"

// ServiceModel mirrors the 'services' table.
// The case-insensitive (provider_id, lower(name)) unique index is created by the migration.
type ServiceModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	ProviderID      int64   `gorm:"not null;index"`
	Name            string  `gorm:"type:varchar(255);not null"`
	Description     *string `gorm:"type:text"`
	Price           *string `gorm:"type:varchar(100)"`
	DurationMinutes *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
