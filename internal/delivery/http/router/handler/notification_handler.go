package handler

import (
	"log/slog"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/delivery/http/response"
	"beautymap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotifications returns the caller's notifications, newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), deliverycontext.GetProfile(c).ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, notifications)
}

// UnreadCount returns how many of the caller's notifications are unread
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.notificationUC.UnreadCount(c.Request().Context(), deliverycontext.GetProfile(c).ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]int64{"count": count})
}

// MarkRead marks one of the caller's notifications as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), deliverycontext.GetProfile(c).ID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// DeleteNotification removes one of the caller's notifications
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.DeleteNotification(c.Request().Context(), deliverycontext.GetProfile(c).ID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ClearNotifications removes all of the caller's notifications
func (h *NotificationHandler) ClearNotifications(c echo.Context) error {
	if err := h.notificationUC.ClearNotifications(c.Request().Context(), deliverycontext.GetProfile(c).ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
