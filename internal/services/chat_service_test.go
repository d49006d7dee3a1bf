package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type mockDestinationRepo struct {
	getByLocationFn func(ctx context.Context, location string) ([]db_models.Destination, error)
	searchFn        func(ctx context.Context, query string) ([]db_models.Destination, error)
	getAllFn        func(ctx context.Context) ([]db_models.Destination, error)
}

func (m *mockDestinationRepo) GetByLocation(ctx context.Context, location string) ([]db_models.Destination, error) {
	return m.getByLocationFn(ctx, location)
}

func (m *mockDestinationRepo) Search(ctx context.Context, query string) ([]db_models.Destination, error) {
	return m.searchFn(ctx, query)
}

func (m *mockDestinationRepo) GetAll(ctx context.Context) ([]db_models.Destination, error) {
	return m.getAllFn(ctx)
}

type mockChatMessageRepo struct {
	saveFn    func(ctx context.Context, message db_models.ChatMessage) (db_models.ChatMessage, error)
	historyFn func(ctx context.Context) ([]db_models.ChatMessage, error)
}

func (m *mockChatMessageRepo) Save(ctx context.Context, message db_models.ChatMessage) (db_models.ChatMessage, error) {
	return m.saveFn(ctx, message)
}

func (m *mockChatMessageRepo) History(ctx context.Context) ([]db_models.ChatMessage, error) {
	return m.historyFn(ctx)
}

func newChatService(destinationRepo repositories.DestinationRepository, chatMessageRepo repositories.ChatMessageRepository) services.ChatServiceInterface {
	return services.NewChatService(
		services.NewLocationService(),
		services.NewRecommendationService(),
		destinationRepo,
		chatMessageRepo,
	)
}

func TestHandleMessage_KnownLocation(t *testing.T) {
	destinationRepo := repositories.NewCatalogRepository()
	chatMessageRepo := repositories.NewChatMessageMemoryRepository()
	svc := newChatService(destinationRepo, chatMessageRepo)

	resp, err := svc.HandleMessage(request_models.ChatRequest{Message: "I want to visit Kerala"}, context.Background())

	require.NoError(t, err)
	assert.True(t, resp.IsBot)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Timestamp)
	assert.Equal(t, "You're exploring **Kerala**! Here are some must-visit places:", resp.Message)
	assert.Len(t, resp.Recommendations, 5)

	// The tip comes from the first catalog match for the location.
	keralaDests, repoErr := destinationRepo.GetByLocation(context.Background(), "kerala")
	require.NoError(t, repoErr)
	require.NotEmpty(t, keralaDests)
	assert.Equal(t, keralaDests[0].TravelTips, resp.TravelTip)

	seen := make(map[string]struct{})
	for _, rec := range resp.Recommendations {
		_, dup := seen[rec.ID]
		assert.False(t, dup, "duplicate recommendation %s", rec.ID)
		seen[rec.ID] = struct{}{}
	}

	history, err := svc.GetChatHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "false", history[0].IsBot)
	assert.Equal(t, "I want to visit Kerala", history[0].Message)
	assert.Equal(t, "true", history[1].IsBot)
	require.NotNil(t, history[1].Location)
	assert.Equal(t, "kerala", *history[1].Location)
	assert.Len(t, history[1].Recommendations, 5)
}

func TestHandleMessage_NoLocationAsksForOne(t *testing.T) {
	svc := newChatService(repositories.NewCatalogRepository(), repositories.NewChatMessageMemoryRepository())

	resp, err := svc.HandleMessage(request_models.ChatRequest{Message: "1234?!"}, context.Background())

	require.NoError(t, err)
	assert.True(t, resp.IsBot)
	assert.Contains(t, resp.Message, "which city or state you'd like to visit")
	assert.Empty(t, resp.Recommendations)
	assert.Empty(t, resp.TravelTip)
}

func TestHandleMessage_UnknownLocation(t *testing.T) {
	svc := newChatService(repositories.NewCatalogRepository(), repositories.NewChatMessageMemoryRepository())

	resp, err := svc.HandleMessage(request_models.ChatRequest{Message: "Tell me about Atlantis"}, context.Background())

	require.NoError(t, err)
	assert.True(t, resp.IsBot)
	assert.Contains(t, resp.Message, `I couldn't find information about "atlantis"`)
	assert.Empty(t, resp.Recommendations)
	assert.Empty(t, resp.TravelTip)
}

func TestHandleMessage_ExplicitLocationWins(t *testing.T) {
	svc := newChatService(repositories.NewCatalogRepository(), repositories.NewChatMessageMemoryRepository())

	resp, err := svc.HandleMessage(request_models.ChatRequest{
		Message:  "What should I see there?",
		Location: "Goa",
	}, context.Background())

	require.NoError(t, err)
	assert.Equal(t, "You're exploring **Goa**! Here are some must-visit places:", resp.Message)
	assert.NotEmpty(t, resp.Recommendations)
}

func TestHandleMessage_EmptyMessage(t *testing.T) {
	svc := newChatService(repositories.NewCatalogRepository(), repositories.NewChatMessageMemoryRepository())

	for _, message := range []string{"", "   "} {
		_, err := svc.HandleMessage(request_models.ChatRequest{Message: message}, context.Background())
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	}
}

func TestHandleMessage_SaveFailure(t *testing.T) {
	chatMessageRepo := &mockChatMessageRepo{
		saveFn: func(ctx context.Context, message db_models.ChatMessage) (db_models.ChatMessage, error) {
			return db_models.ChatMessage{}, errors.New("connection refused")
		},
	}
	svc := newChatService(repositories.NewCatalogRepository(), chatMessageRepo)

	_, err := svc.HandleMessage(request_models.ChatRequest{Message: "I want to visit Kerala"}, context.Background())

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestHandleMessage_LookupFailure(t *testing.T) {
	destinationRepo := &mockDestinationRepo{
		getByLocationFn: func(ctx context.Context, location string) ([]db_models.Destination, error) {
			return nil, errors.New("catalog unavailable")
		},
	}
	svc := newChatService(destinationRepo, repositories.NewChatMessageMemoryRepository())

	_, err := svc.HandleMessage(request_models.ChatRequest{Message: "I want to visit Kerala"}, context.Background())

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetChatHistory_Failure(t *testing.T) {
	chatMessageRepo := &mockChatMessageRepo{
		historyFn: func(ctx context.Context) ([]db_models.ChatMessage, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := newChatService(repositories.NewCatalogRepository(), chatMessageRepo)

	_, err := svc.GetChatHistory(context.Background())

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
