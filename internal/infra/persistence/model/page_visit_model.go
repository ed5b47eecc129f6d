package model

import "time"

// PageVisitModel mirrors the 'page_visits' table. One row per recorded visit.
type PageVisitModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	VisitedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PageVisitModel) TableName() string {
	return "page_visits"
}

// All lists every model managed by the migration, in creation order.
func All() []any {
	return []any{
		&ProfileModel{},
		&ServiceModel{},
		&ReviewModel{},
		&MessageModel{},
		&NotificationModel{},
		&PageVisitModel{},
	}
}
