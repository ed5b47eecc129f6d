package repository

import (
	"context"
	"errors"

	"beautymap/internal/domain/entity"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines persistence operations for direct messages.
type MessageRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Message, error)
	Create(ctx context.Context, message *entity.Message) error

	// ListConversation returns messages between a and b in either direction, oldest first.
	ListConversation(ctx context.Context, a, b int64) ([]*entity.Message, error)

	// ListByProfile returns every message sent or received by the profile, oldest first.
	ListByProfile(ctx context.Context, profileID int64) ([]*entity.Message, error)

	// MarkReadFrom flags every message from senderID to receiverID as read.
	MarkReadFrom(ctx context.Context, receiverID, senderID int64) error

	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error

	// DeleteConversation removes every message between a and b in either direction.
	DeleteConversation(ctx context.Context, a, b int64) (int64, error)

	// DeleteByProfile removes every message the profile sent or received.
	DeleteByProfile(ctx context.Context, profileID int64) error
}
