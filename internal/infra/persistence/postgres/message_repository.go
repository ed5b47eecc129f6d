package postgres

import (
	"context"

	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
	"beautymap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const conversationCondition = "(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)"

// messageRepository implements the repository.MessageRepository interface using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (repo *messageRepository) FindByID(ctx context.Context, id int64) (*entity.Message, error) {
	var messageM model.MessageModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by id")
	}

	return toMessageDomain(&messageM), nil
}

// Create always stores the message as unread.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)
	messageM.Read = false

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid message participant")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	message.Read = false

	return nil
}

func (repo *messageRepository) ListConversation(ctx context.Context, a, b int64) ([]*entity.Message, error) {
	return repo.list(repo.db.WithContext(ctx).Where(conversationCondition, a, b, b, a), "failed to list conversation")
}

func (repo *messageRepository) ListByProfile(ctx context.Context, profileID int64) ([]*entity.Message, error) {
	return repo.list(repo.db.WithContext(ctx).Where("sender_id = ? OR receiver_id = ?", profileID, profileID), "failed to list messages")
}

func (repo *messageRepository) MarkReadFrom(ctx context.Context, receiverID, senderID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("receiver_id = ? AND sender_id = ? AND read = ?", receiverID, senderID, false).
		Update("read", true).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark messages read")
	}

	return nil
}

func (repo *messageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.MessageModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count messages")
	}

	return count, nil
}

func (repo *messageRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MessageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

func (repo *messageRepository) DeleteConversation(ctx context.Context, a, b int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where(conversationCondition, a, b, b, a).
		Delete(&model.MessageModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete conversation")
	}

	return result.RowsAffected, nil
}

func (repo *messageRepository) DeleteByProfile(ctx context.Context, profileID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", profileID, profileID).
		Delete(&model.MessageModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile messages")
	}

	return nil
}

// list orders oldest first; ID breaks ties between messages created in the same instant.
func (repo *messageRepository) list(query *gorm.DB, msg string) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel
	if err := query.Order("created_at ASC, id ASC").Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, m := range messageModels {
		messages = append(messages, toMessageDomain(m))
	}

	return messages, nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Content:    data.Content,
		CreatedAt:  data.CreatedAt,
		Read:       data.Read,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	return &model.MessageModel{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Content:    data.Content,
		CreatedAt:  data.CreatedAt,
		Read:       data.Read,
	}
}
