package repository

import (
	"context"
	"errors"

	"beautymap/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByID(ctx context.Context, id int64) (*entity.Notification, error)

	// ListByProfile returns the profile's notifications, newest first.
	ListByProfile(ctx context.Context, profileID int64) ([]*entity.Notification, error)

	CountUnread(ctx context.Context, profileID int64) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error

	// DeleteByProfile clears every notification owned by the profile.
	DeleteByProfile(ctx context.Context, profileID int64) error
}
