package impl

import (
	"context"
	"testing"
	"time"

	"beautymap/internal/domain/entity"
	"beautymap/internal/domain/service"
	logs "beautymap/internal/infra/log"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEventDispatcher_Publish_StampsEvent(t *testing.T) {
	dispatcher, publisher, _ := newTestDispatcher(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("AEDT", 11*3600))
	dispatcher.now = func() time.Time { return fixed }

	ctx := logs.WithRequestID(context.Background(), "req-9")

	var got *service.DomainEvent
	publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, e *service.DomainEvent) { got = e }).
		Return(nil)

	dispatcher.Publish(ctx, service.EventReviewDeleted, 9, map[string]string{"reviewId": "3"})

	if assert.NotNil(t, got) {
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "req-9", got.RequestID)
		assert.Equal(t, service.EventReviewDeleted, got.Type)
		assert.Equal(t, int64(9), got.ProfileID)
		assert.Equal(t, "3", got.Attributes["reviewId"])
		assert.Equal(t, fixed.UTC(), got.OccurredAt)
	}
}

func TestEventDispatcher_Notify_SwallowsFailures(t *testing.T) {
	dispatcher, publisher, push := newTestDispatcher(t)
	ctx := context.Background()
	link := "/messages?with=1"

	notification := &entity.Notification{
		ID:        5,
		ProfileID: 2,
		Type:      entity.NotificationTypeMessage,
		Title:     "New message from kim",
		Content:   "hi",
		Link:      &link,
	}

	push.EXPECT().
		SendToProfile(ctx, int64(2), "New message from kim", "hi", map[string]string{
			"notificationId": "5",
			"type":           "message",
			"link":           link,
		}).
		Return(errors.New("unregistered token"))
	publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("topic missing"))

	assert.NotPanics(t, func() { dispatcher.Notify(ctx, notification) })
}

func TestEventDispatcher_NilSafe(t *testing.T) {
	var dispatcher *EventDispatcher

	assert.NotPanics(t, func() {
		dispatcher.Publish(context.Background(), service.EventMessageSent, 1, nil)
		dispatcher.Notify(context.Background(), &entity.Notification{})
	})
}
