package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"yatra/internal/models/db_models"
	"yatra/pkg/utils"
)

type ChatMessageRepository interface {
	Save(ctx context.Context, message db_models.ChatMessage) (db_models.ChatMessage, error)
	History(ctx context.Context) ([]db_models.ChatMessage, error)
}

// chatMessageMemoryRepository keeps the conversation log in process memory.
// The log is append-only; ID assignment and the append happen under the same
// lock so concurrent chat turns cannot lose or collide entries.
type chatMessageMemoryRepository struct {
	mu       sync.RWMutex
	messages []db_models.ChatMessage
}

func NewChatMessageMemoryRepository() ChatMessageRepository {
	return &chatMessageMemoryRepository{}
}

func (r *chatMessageMemoryRepository) Save(ctx context.Context, message db_models.ChatMessage) (db_models.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.Timestamp == "" {
		message.Timestamp = utils.NowRFC3339()
	}
	r.messages = append(r.messages, message)
	return message, nil
}

func (r *chatMessageMemoryRepository) History(ctx context.Context) ([]db_models.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := make([]db_models.ChatMessage, len(r.messages))
	copy(history, r.messages)

	// Timestamps share one zone, so string order is chronological order.
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp < history[j].Timestamp
	})
	return history, nil
}
