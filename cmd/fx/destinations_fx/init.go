package destinations_fx

import (
	"go.uber.org/fx"
	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	NewDestinationRepository, NewDestinationService)

func NewDestinationRepository() repositories.DestinationRepository {
	return repositories.NewCatalogRepository()
}

func NewDestinationService(repo repositories.DestinationRepository) services.DestinationServiceInterface {
	return services.NewDestinationService(repo)
}
