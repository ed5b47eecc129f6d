package model

import "time"

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	SenderID   int64  `gorm:"not null;index"`
	ReceiverID int64  `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	Read       bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
