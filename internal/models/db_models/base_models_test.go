package db_models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/models/db_models"
)

func TestBeforeCreate_AssignsIDAndNanoTimestamps(t *testing.T) {
	msg := db_models.ChatMessage{Message: "hello", IsBot: "false"}

	require.NoError(t, msg.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, msg.CreatedAt, msg.UpdatedAt)

	// Nanosecond resolution, not seconds: a second-resolution stamp taken
	// today is ~1e9 while a nanosecond one is ~1e18.
	assert.Greater(t, msg.CreatedAt, int64(1e15))
}

func TestBeforeCreate_KeepsExistingID(t *testing.T) {
	id := uuid.New()
	msg := db_models.ChatMessage{BaseModel: db_models.BaseModel{ID: id}}

	require.NoError(t, msg.BeforeCreate(nil))

	assert.Equal(t, id, msg.ID)
}

func TestBeforeCreate_OrdersSameSecondRows(t *testing.T) {
	// Two rows created within the same wall-clock second must still get
	// distinct, increasing created_at values so it can serve as the
	// history sort tie-break.
	first := db_models.ChatMessage{Message: "user turn", IsBot: "false"}
	require.NoError(t, first.BeforeCreate(nil))

	time.Sleep(time.Millisecond)

	second := db_models.ChatMessage{Message: "bot turn", IsBot: "true"}
	require.NoError(t, second.BeforeCreate(nil))

	assert.Greater(t, second.CreatedAt, first.CreatedAt)
}

func TestBeforeUpdate_AdvancesUpdatedAt(t *testing.T) {
	msg := db_models.ChatMessage{Message: "hello", IsBot: "false"}
	require.NoError(t, msg.BeforeCreate(nil))

	created := msg.CreatedAt
	time.Sleep(time.Millisecond)

	require.NoError(t, msg.BeforeUpdate(nil))

	assert.Equal(t, created, msg.CreatedAt)
	assert.Greater(t, msg.UpdatedAt, created)
}
