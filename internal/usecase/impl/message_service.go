package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/messaging"
	"beautymap/internal/domain/repository"
	"beautymap/internal/domain/service"
	"beautymap/internal/usecase"
	"beautymap/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const messagePreviewLength = 80

// messageService implements the MessageUsecase interface.
type messageService struct {
	txManager repository.TransactionManager
	events    *EventDispatcher
	logger    *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Events    *EventDispatcher
	Logger    *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		txManager: params.TxManager,
		events:    params.Events,
		logger:    params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage stores a message and notifies the receiver.
func (srv *messageService) SendMessage(ctx context.Context, senderID int64, input *usecase.SendMessageInput) (*entity.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.ErrEmptyMessage
	}

	srv.log(ctx).Debug("Sending message", slog.Int64("senderID", senderID), slog.Int64("receiverID", input.ReceiverID))

	message := &entity.Message{
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Content:    content,
	}

	var notification *entity.Notification
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		sender, err := findProfile(ctx, profileRepo, senderID)
		if err != nil {
			return err
		}
		if _, err := profileRepo.FindByID(ctx, input.ReceiverID); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("receiver not found")
			}

			return errors.Wrap(err, "failed to find receiver")
		}

		if err := repoFactory.MessageRepo().Create(ctx, message); err != nil {
			return errors.Wrap(err, "failed to create message")
		}

		if senderID == input.ReceiverID {
			return nil
		}

		notification = messageNotification(sender, message)
		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create message notification")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	srv.events.Publish(ctx, service.EventMessageSent, message.ReceiverID, map[string]string{
		"messageId": strconv.FormatInt(message.ID, 10),
		"senderId":  strconv.FormatInt(message.SenderID, 10),
	})
	srv.events.Notify(ctx, notification)

	return message, nil
}

// GetConversation returns the exchange between viewer and partner and marks the
// partner's messages as read.
func (srv *messageService) GetConversation(ctx context.Context, viewerID, partnerID int64) ([]*entity.Message, error) {
	var messages []*entity.Message
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		messageRepo := repoFactory.MessageRepo()

		found, err := messageRepo.ListConversation(ctx, viewerID, partnerID)
		if err != nil {
			return errors.Wrap(err, "failed to list conversation")
		}

		if err := messageRepo.MarkReadFrom(ctx, viewerID, partnerID); err != nil {
			return errors.Wrap(err, "failed to mark conversation read")
		}
		messages = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get conversation")
	}

	return messages, nil
}

// ListMessages returns everything the profile sent or received, oldest first.
func (srv *messageService) ListMessages(ctx context.Context, profileID int64) ([]*entity.Message, error) {
	var messages []*entity.Message
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MessageRepo().ListByProfile(ctx, profileID)
		if err != nil {
			return errors.Wrap(err, "failed to list messages")
		}
		messages = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list profile messages")
	}

	return messages, nil
}

// ListConversations groups the profile's messages per partner, latest first.
func (srv *messageService) ListConversations(ctx context.Context, profileID int64) ([]*messaging.Conversation, error) {
	messages, err := srv.ListMessages(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return messaging.Group(profileID, messages), nil
}

// DeleteMessage removes a single message the actor took part in.
func (srv *messageService) DeleteMessage(ctx context.Context, actorID, messageID int64) error {
	srv.log(ctx).Info("Deleting message", slog.Int64("messageID", messageID), slog.Int64("actorID", actorID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		messageRepo := repoFactory.MessageRepo()

		message, err := messageRepo.FindByID(ctx, messageID)
		if err != nil {
			if errors.Is(err, repository.ErrMessageNotFound) {
				return domainerrors.ErrMessageNotFound
			}

			return errors.Wrap(err, "failed to find message")
		}
		if !message.Involves(actorID) {
			return domainerrors.ErrForbidden.WrapMessage("not a participant of this message")
		}

		return messageRepo.Delete(ctx, messageID)
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete message")
	}

	return nil
}

// DeleteConversation removes every message between actor and partner.
func (srv *messageService) DeleteConversation(ctx context.Context, actorID, partnerID int64) error {
	var deleted int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.MessageRepo().DeleteConversation(ctx, actorID, partnerID)
		if err != nil {
			return errors.Wrap(err, "failed to delete conversation")
		}
		deleted = n

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete conversation")
	}

	srv.log(ctx).Info("Conversation deleted",
		slog.Int64("actorID", actorID),
		slog.Int64("partnerID", partnerID),
		slog.Int64("deleted", deleted))

	return nil
}

func messageNotification(sender *entity.Profile, message *entity.Message) *entity.Notification {
	link := "/messages?with=" + strconv.FormatInt(sender.ID, 10)

	return &entity.Notification{
		ProfileID: message.ReceiverID,
		Type:      entity.NotificationTypeMessage,
		Title:     "New message from " + sender.Username,
		Content:   util.Truncate(message.Content, messagePreviewLength),
		Link:      &link,
	}
}
