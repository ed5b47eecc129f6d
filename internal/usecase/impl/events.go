package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/domain/entity"
	"beautymap/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// EventDispatcherParams holds dependencies for the event dispatcher, injected by Fx.
type EventDispatcherParams struct {
	fx.In

	Publisher service.EventPublisher
	Push      service.PushService
	Logger    *slog.Logger
}

// EventDispatcher fans committed changes out to the event publisher and push
// notifications. Failures are logged and never returned.
type EventDispatcher struct {
	publisher service.EventPublisher
	push      service.PushService
	logger    *slog.Logger
	now       func() time.Time
}

// NewEventDispatcher is the constructor for EventDispatcher.
func NewEventDispatcher(params EventDispatcherParams) *EventDispatcher {
	return &EventDispatcher{
		publisher: params.Publisher,
		push:      params.Push,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (d *EventDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Publish emits a domain event about profileID.
func (d *EventDispatcher) Publish(ctx context.Context, eventType service.EventType, profileID int64, attributes map[string]string) {
	if d == nil || d.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		ID:         uuid.New().String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		ProfileID:  profileID,
		Attributes: attributes,
		OccurredAt: d.now().UTC(),
	}

	if err := d.publisher.Publish(ctx, event); err != nil {
		d.log(ctx).Warn("Failed to publish domain event",
			slog.String("type", string(eventType)),
			slog.Int64("profileID", profileID),
			slog.Any("error", err))
	}
}

// Notify pushes a freshly committed notification to its owner's devices and
// announces it as a domain event.
func (d *EventDispatcher) Notify(ctx context.Context, notification *entity.Notification) {
	if d == nil || notification == nil {
		return
	}

	data := map[string]string{
		"notificationId": strconv.FormatInt(notification.ID, 10),
		"type":           string(notification.Type),
	}
	if notification.Link != nil {
		data["link"] = *notification.Link
	}

	if d.push != nil {
		if err := d.push.SendToProfile(ctx, notification.ProfileID, notification.Title, notification.Content, data); err != nil {
			d.log(ctx).Warn("Failed to push notification",
				slog.Int64("profileID", notification.ProfileID),
				slog.Int64("notificationID", notification.ID),
				slog.Any("error", err))
		}
	}

	d.Publish(ctx, service.EventNotificationCreated, notification.ProfileID, data)
}
