package services

import (
	"yatra/internal/models/db_models"
	"yatra/internal/models/response_models"
)

type RecommendationServiceInterface interface {
	SelectDiverse(destinations []db_models.Destination, maxCount int) []response_models.Recommendation
}

type RecommendationService struct{}

func NewRecommendationService() RecommendationServiceInterface {
	return &RecommendationService{}
}

// SelectDiverse picks at most maxCount destinations, front-loading one
// representative per category in priority order before filling the remaining
// slots in the input's original order. The input order is the store's catalog
// order, which makes the whole selection deterministic.
func (s *RecommendationService) SelectDiverse(destinations []db_models.Destination, maxCount int) []response_models.Recommendation {
	if maxCount <= 0 {
		return []response_models.Recommendation{}
	}

	selected := make([]response_models.Recommendation, 0, maxCount)
	usedCategories := make(map[string]struct{})
	usedIDs := make(map[string]struct{})

	for _, category := range db_models.CategoryPriority {
		if len(selected) >= maxCount {
			break
		}
		for _, dest := range destinations {
			if dest.Category != category {
				continue
			}
			if _, used := usedCategories[category]; used {
				break
			}
			selected = append(selected, toRecommendation(dest))
			usedCategories[category] = struct{}{}
			usedIDs[dest.ID] = struct{}{}
			break
		}
	}

	for _, dest := range destinations {
		if len(selected) >= maxCount {
			break
		}
		if _, taken := usedIDs[dest.ID]; taken {
			continue
		}
		selected = append(selected, toRecommendation(dest))
		usedIDs[dest.ID] = struct{}{}
	}

	if len(selected) > maxCount {
		selected = selected[:maxCount]
	}
	return selected
}

func toRecommendation(dest db_models.Destination) response_models.Recommendation {
	return response_models.Recommendation{
		ID:          dest.ID,
		Name:        dest.Name,
		Description: dest.Description,
		Category:    dest.Category,
		ImageURL:    dest.ImageURL,
	}
}
