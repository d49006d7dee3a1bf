package services

import (
	"context"
	"log"
	"strings"

	"yatra/internal/models/db_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type DestinationServiceInterface interface {
	SearchDestinations(query string, ctx context.Context) ([]response_models.Destination, error)
	GetPopularDestinations(ctx context.Context) ([]response_models.PopularDestination, error)
	GetAllDestinations(ctx context.Context) ([]response_models.Destination, error)
}

// popularStates is the curated suggestion list surfaced to new users. Names
// with no catalog matches are dropped from the response rather than shown
// with a zero count.
var popularStates = []string{
	"Delhi", "Mumbai", "Kerala", "Rajasthan", "Goa", "Lucknow", "Chennai", "Bangalore",
	"Kolkata", "Shimla", "Manali", "Amritsar", "Rishikesh", "Haridwar", "Hyderabad",
	"Guwahati", "Ahmedabad", "Bhopal", "Gangtok", "Srinagar", "Leh",
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
	}
}

func (d *DestinationService) SearchDestinations(query string, ctx context.Context) ([]response_models.Destination, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrInvalidInput
	}

	destinations, err := d.destinationRepo.Search(ctx, query)
	if err != nil {
		log.Printf("Error searching destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return toDestinationResponses(destinations), nil
}

func (d *DestinationService) GetPopularDestinations(ctx context.Context) ([]response_models.PopularDestination, error) {
	popular := make([]response_models.PopularDestination, 0, len(popularStates))

	for _, state := range popularStates {
		destinations, err := d.destinationRepo.GetByLocation(ctx, state)
		if err != nil {
			log.Printf("Error getting destinations for %q: %v", state, err)
			return nil, utils.ErrDatabaseError
		}
		if len(destinations) == 0 {
			continue
		}
		popular = append(popular, response_models.PopularDestination{
			Name:  state,
			Count: len(destinations),
		})
	}

	return popular, nil
}

func (d *DestinationService) GetAllDestinations(ctx context.Context) ([]response_models.Destination, error) {
	destinations, err := d.destinationRepo.GetAll(ctx)
	if err != nil {
		log.Printf("Error listing destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return toDestinationResponses(destinations), nil
}

func toDestinationResponses(destinations []db_models.Destination) []response_models.Destination {
	responses := make([]response_models.Destination, 0, len(destinations))
	for _, dest := range destinations {
		responses = append(responses, response_models.Destination{
			ID:              dest.ID,
			Name:            dest.Name,
			State:           dest.State,
			Category:        dest.Category,
			Description:     dest.Description,
			ImageURL:        dest.ImageURL,
			BestTimeToVisit: dest.BestTimeToVisit,
			LocalFood:       dest.LocalFood,
			TravelTips:      dest.TravelTips,
		})
	}
	return responses
}
