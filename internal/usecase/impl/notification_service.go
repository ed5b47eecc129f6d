package impl

import (
	"context"
	"log/slog"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
	"beautymap/internal/usecase"

	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(txManager repository.TransactionManager, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListNotifications returns the profile's notifications, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, profileID int64) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NotificationRepo().ListByProfile(ctx, profileID)
		if err != nil {
			return errors.Wrap(err, "failed to list notifications")
		}
		notifications = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list profile notifications")
	}

	return notifications, nil
}

// UnreadCount returns how many notifications the profile has not read yet.
func (srv *notificationService) UnreadCount(ctx context.Context, profileID int64) (int64, error) {
	var count int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.NotificationRepo().CountUnread(ctx, profileID)
		if err != nil {
			return errors.Wrap(err, "failed to count unread notifications")
		}
		count = n

		return nil
	})

	if err != nil {
		return 0, errors.Wrap(err, "failed to get unread count")
	}

	return count, nil
}

// MarkRead flags one of the profile's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, profileID, notificationID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		notificationRepo := repoFactory.NotificationRepo()
		if err := ensureNotificationOwner(ctx, notificationRepo, profileID, notificationID); err != nil {
			return err
		}

		return notificationRepo.MarkRead(ctx, notificationID)
	})

	if err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// DeleteNotification removes one of the profile's notifications.
func (srv *notificationService) DeleteNotification(ctx context.Context, profileID, notificationID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		notificationRepo := repoFactory.NotificationRepo()
		if err := ensureNotificationOwner(ctx, notificationRepo, profileID, notificationID); err != nil {
			return err
		}

		return notificationRepo.Delete(ctx, notificationID)
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// ClearNotifications removes all of the profile's notifications.
func (srv *notificationService) ClearNotifications(ctx context.Context, profileID int64) error {
	srv.log(ctx).Info("Clearing notifications", slog.Int64("profileID", profileID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NotificationRepo().DeleteByProfile(ctx, profileID)
	})

	if err != nil {
		return errors.Wrap(err, "failed to clear notifications")
	}

	return nil
}

func ensureNotificationOwner(ctx context.Context, notificationRepo repository.NotificationRepository, profileID, notificationID int64) error {
	notification, err := notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to find notification")
	}
	if notification.ProfileID != profileID {
		return domainerrors.ErrForbidden.WrapMessage("notification belongs to another profile")
	}

	return nil
}
