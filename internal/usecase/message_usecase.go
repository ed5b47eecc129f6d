package usecase

import (
	"context"

	"beautymap/internal/domain/entity"
	"beautymap/internal/domain/messaging"
)

// MessageUsecase covers direct messaging between profiles.
type MessageUsecase interface {
	SendMessage(ctx context.Context, senderID int64, input *SendMessageInput) (*entity.Message, error)
	// GetConversation returns both directions between viewer and partner, oldest first, and marks
	// the partner's messages to the viewer as read.
	GetConversation(ctx context.Context, viewerID, partnerID int64) ([]*entity.Message, error)
	ListMessages(ctx context.Context, profileID int64) ([]*entity.Message, error)
	ListConversations(ctx context.Context, profileID int64) ([]*messaging.Conversation, error)
	// DeleteMessage removes a message the actor sent or received.
	DeleteMessage(ctx context.Context, actorID, messageID int64) error
	DeleteConversation(ctx context.Context, actorID, partnerID int64) error
}

// SendMessageInput defines the data required to send a message.
type SendMessageInput struct {
	ReceiverID int64  `json:"receiverId" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required,max=5000"`
}
