package postgres

import (
	"context"

	"nutritrack/internal/domain/entity"
	domainerrors "nutritrack/internal/domain/errors"
	"nutritrack/internal/domain/repository"
	"nutritrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func messagesInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sent_at ASC")
}

func (repo *chatRepository) Create(ctx context.Context, chat *entity.Chat) error {
	chatM := &model.ChatModel{ID: chat.ID, UserID: chat.UserID}

	if err := repo.db.WithContext(ctx).Omit("Messages").Create(chatM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat")
	}

	chat.ID = chatM.ID
	chat.CreatedAt = chatM.CreatedAt
	chat.UpdatedAt = chatM.UpdatedAt
	if chat.Messages == nil {
		chat.Messages = []*entity.ChatMessage{}
	}

	return nil
}

func (repo *chatRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Chat, error) {
	var chatM model.ChatModel

	if err := repo.db.WithContext(ctx).
		Preload("Messages", messagesInOrder).
		Where("id = ? AND user_id = ?", id, userID).
		First(&chatM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChatNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat by ID")
	}

	return toChatDomain(&chatM), nil
}

// ListRecent returns the newest chats first, each with its messages in send order.
func (repo *chatRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Chat, error) {
	var chatModels []*model.ChatModel

	if err := repo.db.WithContext(ctx).
		Preload("Messages", messagesInOrder).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&chatModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chats")
	}

	chats := make([]*entity.Chat, 0, len(chatModels))
	for _, chatM := range chatModels {
		chats = append(chats, toChatDomain(chatM))
	}

	return chats, nil
}

// DeleteOldest keeps the user's newest keep chats. Messages go with their chat through ON DELETE CASCADE.
func (repo *chatRepository) DeleteOldest(ctx context.Context, userID uuid.UUID, keep int) error {
	newest := repo.db.WithContext(ctx).
		Model(&model.ChatModel{}).
		Select("id").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(keep)

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("id NOT IN (?)", newest).
		Delete(&model.ChatModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to evict old chats")
	}

	return nil
}

func (repo *chatRepository) AppendMessages(ctx context.Context, chatID uuid.UUID, messages []*entity.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	messageModels := make([]*model.ChatMessageModel, 0, len(messages))
	for _, msg := range messages {
		messageModels = append(messageModels, &model.ChatMessageModel{
			ID:     msg.ID,
			ChatID: chatID,
			Sender: string(msg.Sender),
			Text:   msg.Text,
			SentAt: msg.SentAt,
		})
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&messageModels).Error; err != nil {
			return err
		}

		return tx.Model(&model.ChatModel{}).
			Where("id = ?", chatID).
			Update("updated_at", gorm.Expr("NOW()")).Error
	})
	if err != nil {
		if violates(err, foreignKeyConstraint) {
			return repository.ErrChatNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append chat messages")
	}

	for i, msg := range messages {
		msg.ID = messageModels[i].ID
		msg.ChatID = chatID
	}

	return nil
}

// --- Mapper Functions ---

func toChatDomain(data *model.ChatModel) *entity.Chat {
	chat := &entity.Chat{
		ID:        data.ID,
		UserID:    data.UserID,
		Messages:  make([]*entity.ChatMessage, 0, len(data.Messages)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	for _, msgM := range data.Messages {
		chat.Messages = append(chat.Messages, &entity.ChatMessage{
			ID:     msgM.ID,
			ChatID: msgM.ChatID,
			Sender: entity.ChatSender(msgM.Sender),
			Text:   msgM.Text,
			SentAt: msgM.SentAt,
		})
	}

	return chat
}
