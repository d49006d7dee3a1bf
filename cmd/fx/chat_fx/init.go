package chat_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"yatra/internal/infra"
	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	NewLocationService,
	NewRecommendationService,
	NewChatMessageRepository,
	NewChatService,
)

func NewLocationService() services.LocationServiceInterface {
	return services.NewLocationService()
}

func NewRecommendationService() services.RecommendationServiceInterface {
	return services.NewRecommendationService()
}

// NewChatMessageRepository picks the chat-history backend: Postgres when
// POSTGRES_URL is configured, otherwise the in-process log.
func NewChatMessageRepository(lc fx.Lifecycle) repositories.ChatMessageRepository {
	if dsn := os.Getenv("POSTGRES_URL"); dsn != "" {
		db := infra.InitPostgresql()
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.ClosePostgresql(db)
				return nil
			},
		})
		return repositories.NewChatMessagePGRepository(db)
	}

	log.Println("POSTGRES_URL not set, chat history kept in memory")
	return repositories.NewChatMessageMemoryRepository()
}

func NewChatService(
	locationService services.LocationServiceInterface,
	recommendationService services.RecommendationServiceInterface,
	destinationRepo repositories.DestinationRepository,
	chatMessageRepo repositories.ChatMessageRepository,
) services.ChatServiceInterface {
	return services.NewChatService(locationService, recommendationService, destinationRepo, chatMessageRepo)
}
