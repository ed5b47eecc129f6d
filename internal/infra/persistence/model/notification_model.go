package model

import "time"

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	ProfileID int64   `gorm:"not null;index"`
	Type      string  `gorm:"type:varchar(20);not null"`
	Title     string  `gorm:"type:varchar(255);not null"`
	Content   string  `gorm:"type:text;not null"`
	Link      *string `gorm:"type:text"`
	Read      bool    `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
