package entity

import "time"

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationTypeMessage NotificationType = "message"
	NotificationTypeReview  NotificationType = "review"
	NotificationTypeBooking NotificationType = "booking"
	NotificationTypeSystem  NotificationType = "system"
)

// IsValid checks if the NotificationType is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeMessage, NotificationTypeReview, NotificationTypeBooking, NotificationTypeSystem:
		return true
	default:
		return false
	}
}

// Notification is an in-app notice owned by a single profile.
type Notification struct {
	ID        int64            `json:"id"`
	ProfileID int64            `json:"profileId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Link      *string          `json:"link,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
