package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

const maxRecommendations = 5

type ChatServiceInterface interface {
	HandleMessage(request request_models.ChatRequest, ctx context.Context) (response_models.ChatResponse, error)
	GetChatHistory(ctx context.Context) ([]response_models.ChatHistoryEntry, error)
}

type ChatService struct {
	locationService       LocationServiceInterface
	recommendationService RecommendationServiceInterface
	destinationRepo       repositories.DestinationRepository
	chatMessageRepo       repositories.ChatMessageRepository
}

func NewChatService(
	locationService LocationServiceInterface,
	recommendationService RecommendationServiceInterface,
	destinationRepo repositories.DestinationRepository,
	chatMessageRepo repositories.ChatMessageRepository,
) ChatServiceInterface {
	return &ChatService{
		locationService:       locationService,
		recommendationService: recommendationService,
		destinationRepo:       destinationRepo,
		chatMessageRepo:       chatMessageRepo,
	}
}

// HandleMessage runs one chat turn: log the user message, resolve a location,
// look up the catalog and assemble the bot reply. "No location" and "no
// matches" are conversational branches, not errors.
func (s *ChatService) HandleMessage(request request_models.ChatRequest, ctx context.Context) (response_models.ChatResponse, error) {
	if strings.TrimSpace(request.Message) == "" {
		return response_models.ChatResponse{}, utils.ErrInvalidInput
	}

	var requestLocation *string
	if request.Location != "" {
		requestLocation = &request.Location
	}

	userMessage := db_models.ChatMessage{
		Message:  request.Message,
		IsBot:    "false",
		Location: requestLocation,
	}
	if _, err := s.chatMessageRepo.Save(ctx, userMessage); err != nil {
		log.Printf("Error saving user message: %v", err)
		return response_models.ChatResponse{}, utils.ErrDatabaseError
	}

	location := s.locationService.ExtractLocation(request.Message, request.Location)

	if location == "" {
		message := "I'd be happy to help you explore India! Could you please tell me which city or state you'd like to visit? For example, you could say 'I want to visit Kerala' or 'Show me places in Delhi'."
		return s.respond(ctx, message, nil, nil, "")
	}

	destinations, err := s.destinationRepo.GetByLocation(ctx, location)
	if err != nil {
		log.Printf("Error looking up destinations for %q: %v", location, err)
		return response_models.ChatResponse{}, utils.ErrDatabaseError
	}

	if len(destinations) == 0 {
		message := fmt.Sprintf("I couldn't find information about \"%s\". Could you please try another Indian city or state? Some popular destinations I can help with include Delhi, Mumbai, Kerala, Rajasthan, Goa, Tamil Nadu, and many more!", location)
		return s.respond(ctx, message, &location, nil, "")
	}

	recommendations := s.recommendationService.SelectDiverse(destinations, maxRecommendations)

	locationName := capitalize(location)
	message := fmt.Sprintf("You're exploring **%s**! Here are some must-visit places:", locationName)

	travelTip := destinations[0].TravelTips
	if travelTip == "" {
		travelTip = fmt.Sprintf("Best time to visit %s is typically October to March. Don't forget to try the local cuisine!", locationName)
	}

	return s.respond(ctx, message, &location, recommendations, travelTip)
}

// respond persists the bot turn and shapes the API response. The message is
// logged before the response is returned so history and response stay
// consistent even if the caller drops the reply.
func (s *ChatService) respond(ctx context.Context, message string, location *string, recommendations []response_models.Recommendation, travelTip string) (response_models.ChatResponse, error) {
	var encoded []byte
	if len(recommendations) > 0 {
		var err error
		encoded, err = json.Marshal(recommendations)
		if err != nil {
			log.Printf("Error encoding recommendations: %v", err)
			return response_models.ChatResponse{}, utils.ErrDatabaseError
		}
	}

	botMessage := db_models.ChatMessage{
		Message:         message,
		IsBot:           "true",
		Timestamp:       utils.NowRFC3339(),
		Location:        location,
		Recommendations: encoded,
	}
	saved, err := s.chatMessageRepo.Save(ctx, botMessage)
	if err != nil {
		log.Printf("Error saving bot message: %v", err)
		return response_models.ChatResponse{}, utils.ErrDatabaseError
	}

	return response_models.ChatResponse{
		ID:              saved.ID.String(),
		Message:         message,
		IsBot:           true,
		Timestamp:       saved.Timestamp,
		Recommendations: recommendations,
		TravelTip:       travelTip,
	}, nil
}

func (s *ChatService) GetChatHistory(ctx context.Context) ([]response_models.ChatHistoryEntry, error) {
	messages, err := s.chatMessageRepo.History(ctx)
	if err != nil {
		log.Printf("Error loading chat history: %v", err)
		return nil, utils.ErrDatabaseError
	}

	history := make([]response_models.ChatHistoryEntry, 0, len(messages))
	for _, msg := range messages {
		entry := response_models.ChatHistoryEntry{
			ID:        msg.ID.String(),
			Message:   msg.Message,
			IsBot:     msg.IsBot,
			Timestamp: msg.Timestamp,
			Location:  msg.Location,
		}
		if len(msg.Recommendations) > 0 {
			if err := json.Unmarshal(msg.Recommendations, &entry.Recommendations); err != nil {
				log.Printf("Error decoding recommendations for message %s: %v", msg.ID, err)
			}
		}
		history = append(history, entry)
	}
	return history, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
