package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"beautymap/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)

	return "projects/p/messages/1", f.err
}

func TestFirebaseService_SendToProfile(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client}

	err := svc.SendToProfile(context.Background(), 42, "New review", "4 stars", map[string]string{"type": "review"})
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	assert.Equal(t, "profile-42", client.sent[0].Topic)
	assert.Equal(t, "New review", client.sent[0].Notification.Title)
	assert.Equal(t, "review", client.sent[0].Data["type"])
}

func TestFirebaseService_SendToProfileError(t *testing.T) {
	svc := &firebaseService{client: &fakeMessagingClient{err: errors.New("unavailable")}}

	err := svc.SendToProfile(context.Background(), 1, "t", "b", nil)
	assert.ErrorContains(t, err, "unavailable")
}

func TestNewPushService_DisabledWithoutConfig(t *testing.T) {
	svc, err := NewPushService(PushParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.NoError(t, svc.SendToProfile(context.Background(), 1, "t", "b", nil))
}
