package repositories_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/models/db_models"
	"yatra/internal/repositories"
)

func TestChatMessageMemory_SaveAssignsIDAndTimestamp(t *testing.T) {
	repo := repositories.NewChatMessageMemoryRepository()

	saved, err := repo.Save(context.Background(), db_models.ChatMessage{
		Message: "hello",
		IsBot:   "false",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.NotEmpty(t, saved.Timestamp)
}

func TestChatMessageMemory_SaveKeepsProvidedTimestamp(t *testing.T) {
	repo := repositories.NewChatMessageMemoryRepository()

	saved, err := repo.Save(context.Background(), db_models.ChatMessage{
		Message:   "hello",
		IsBot:     "true",
		Timestamp: "2026-01-15T10:30:00+05:30",
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-01-15T10:30:00+05:30", saved.Timestamp)
}

func TestChatMessageMemory_HistoryOrderedByTimestamp(t *testing.T) {
	repo := repositories.NewChatMessageMemoryRepository()
	ctx := context.Background()

	// Inserted out of chronological order on purpose.
	timestamps := []string{
		"2026-01-15T10:30:02+05:30",
		"2026-01-15T10:30:00+05:30",
		"2026-01-15T10:30:01+05:30",
	}
	for i, ts := range timestamps {
		_, err := repo.Save(ctx, db_models.ChatMessage{
			Message:   fmt.Sprintf("message %d", i),
			IsBot:     "false",
			Timestamp: ts,
		})
		require.NoError(t, err)
	}

	history, err := repo.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "message 1", history[0].Message)
	assert.Equal(t, "message 2", history[1].Message)
	assert.Equal(t, "message 0", history[2].Message)
}

func TestChatMessageMemory_TiesKeepInsertionOrder(t *testing.T) {
	repo := repositories.NewChatMessageMemoryRepository()
	ctx := context.Background()

	ts := "2026-01-15T10:30:00+05:30"
	for i := 0; i < 5; i++ {
		_, err := repo.Save(ctx, db_models.ChatMessage{
			Message:   fmt.Sprintf("message %d", i),
			IsBot:     "false",
			Timestamp: ts,
		})
		require.NoError(t, err)
	}

	history, err := repo.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 5)
	for i, msg := range history {
		assert.Equal(t, fmt.Sprintf("message %d", i), msg.Message)
	}
}

func TestChatMessageMemory_ConcurrentSaves(t *testing.T) {
	repo := repositories.NewChatMessageMemoryRepository()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := repo.Save(ctx, db_models.ChatMessage{
				Message: fmt.Sprintf("message %d", i),
				IsBot:   "false",
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	history, err := repo.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, workers)

	seen := make(map[uuid.UUID]struct{}, workers)
	for _, msg := range history {
		_, dup := seen[msg.ID]
		assert.False(t, dup, "duplicate id %s", msg.ID)
		seen[msg.ID] = struct{}{}
	}
}

func TestChatMessageMemory_HistoryReturnsCopy(t *testing.T) {
	repo := repositories.NewChatMessageMemoryRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, db_models.ChatMessage{Message: "hello", IsBot: "false"})
	require.NoError(t, err)

	first, err := repo.History(ctx)
	require.NoError(t, err)
	first[0].Message = "mutated"

	second, err := repo.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", second[0].Message)
}
