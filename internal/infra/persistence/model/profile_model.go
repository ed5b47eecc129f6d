package model

import (
	"time"
)

// ProfileModel mirrors the 'profiles' table.
type ProfileModel struct {
	ID                int64   `gorm:"primaryKey;autoIncrement"`
	ExternalID        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username          string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	UsernameChangedAt *time.Time
	Role              string  `gorm:"type:varchar(20);not null;default:'client';index"`
	IsAdmin           bool    `gorm:"not null;default:false"`
	Bio               string  `gorm:"type:text"`
	Instagram         string  `gorm:"type:varchar(255)"`
	ProfileImageURL   string  `gorm:"type:text"`
	Location          string  `gorm:"type:text"`
	LocationType      *string `gorm:"type:varchar(20)"`
	Latitude          *float64
	Longitude         *float64
	Rating            float64 `gorm:"not null;default:0"`
	ReviewCount       int     `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
