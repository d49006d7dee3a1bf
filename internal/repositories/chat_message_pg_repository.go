package repositories

import (
	"context"
	"log"

	"gorm.io/gorm"

	"yatra/internal/models/db_models"
	"yatra/pkg/utils"
)

// chatMessagePGRepository persists the conversation log in Postgres. Wired in
// place of the in-memory repository when POSTGRES_URL is configured.
type chatMessagePGRepository struct {
	db *gorm.DB
}

func NewChatMessagePGRepository(db *gorm.DB) ChatMessageRepository {
	if err := db.AutoMigrate(&db_models.ChatMessage{}); err != nil {
		log.Printf("Error migrating chat_messages: %v", err)
	}
	return &chatMessagePGRepository{db: db}
}

func (r *chatMessagePGRepository) Save(ctx context.Context, message db_models.ChatMessage) (db_models.ChatMessage, error) {
	if message.Timestamp == "" {
		message.Timestamp = utils.NowRFC3339()
	}
	if err := r.db.WithContext(ctx).Create(&message).Error; err != nil {
		return db_models.ChatMessage{}, err
	}
	return message, nil
}

func (r *chatMessagePGRepository) History(ctx context.Context) ([]db_models.ChatMessage, error) {
	// created_at breaks same-second timestamp ties, keeping a user/bot pair
	// in insertion order like the in-memory log does.
	var messages []db_models.ChatMessage
	err := r.db.WithContext(ctx).
		Order("timestamp asc, created_at asc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
