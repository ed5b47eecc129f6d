package service

import (
	"context"
)

// PushService defines the interface for push notification services
type PushService interface {
	// SendToProfile delivers a push message to every device subscribed to the profile's topic.
	SendToProfile(ctx context.Context, profileID int64, title, body string, data map[string]string) error
}
