package usecase

import (
	"context"

	"beautymap/internal/domain/entity"
)

// NotificationUsecase manages a profile's in-app notifications.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, profileID int64) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context, profileID int64) (int64, error)
	MarkRead(ctx context.Context, profileID, notificationID int64) error
	DeleteNotification(ctx context.Context, profileID, notificationID int64) error
	ClearNotifications(ctx context.Context, profileID int64) error
}
