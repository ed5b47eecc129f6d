package notification

import (
	"context"
	"fmt"
	"log/slog"

	"beautymap/config"
	"beautymap/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// messagingClient is the subset of *messaging.Client used for topic pushes.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.PushService, error) {
	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	opts := make([]option.ClientOption, 0, 1)
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// ProfileTopic is the FCM topic every device of a profile subscribes to.
func ProfileTopic(profileID int64) string {
	return fmt.Sprintf("profile-%d", profileID)
}

// SendToProfile pushes to the profile's topic.
func (s *firebaseService) SendToProfile(ctx context.Context, profileID int64, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: ProfileTopic(profileID),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendToProfile(ctx context.Context, profileID int64, title, _ string, _ map[string]string) error {
	s.logger.DebugContext(ctx, "Push disabled, skipping",
		slog.Int64("profile_id", profileID),
		slog.String("title", title),
	)

	return nil
}

// PushParams holds dependencies for PushService, injected by Fx
type PushParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService wires Firebase when configured and a no-op otherwise.
func NewPushService(params PushParams) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return &noopPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}
