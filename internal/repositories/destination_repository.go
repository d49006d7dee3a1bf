package repositories

import (
	"context"
	"strings"

	"yatra/internal/models/db_models"
)

type DestinationRepository interface {
	GetByLocation(ctx context.Context, location string) ([]db_models.Destination, error)
	Search(ctx context.Context, query string) ([]db_models.Destination, error)
	GetAll(ctx context.Context) ([]db_models.Destination, error)
}

// catalogRepository serves the embedded destination catalog. The slice is
// built once at construction and read-only afterwards, so lookups need no
// locking and always return matches in catalog insertion order.
type catalogRepository struct {
	destinations []db_models.Destination
}

func NewCatalogRepository() DestinationRepository {
	return &catalogRepository{destinations: seedDestinations()}
}

func (r *catalogRepository) GetByLocation(ctx context.Context, location string) ([]db_models.Destination, error) {
	needle := strings.ToLower(strings.TrimSpace(location))

	var matches []db_models.Destination
	for _, dest := range r.destinations {
		state := strings.ToLower(dest.State)
		name := strings.ToLower(dest.Name)

		// Containment runs both ways: a query like "kerala this summer"
		// still resolves to Kerala records because the state is contained
		// in the query.
		if strings.Contains(state, needle) || strings.Contains(name, needle) ||
			strings.Contains(needle, state) || strings.Contains(needle, name) {
			matches = append(matches, dest)
		}
	}
	return matches, nil
}

func (r *catalogRepository) Search(ctx context.Context, query string) ([]db_models.Destination, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	var matches []db_models.Destination
	for _, dest := range r.destinations {
		if strings.Contains(strings.ToLower(dest.State), needle) ||
			strings.Contains(strings.ToLower(dest.Name), needle) ||
			strings.Contains(strings.ToLower(dest.Category), needle) {
			matches = append(matches, dest)
		}
	}
	return matches, nil
}

func (r *catalogRepository) GetAll(ctx context.Context) ([]db_models.Destination, error) {
	snapshot := make([]db_models.Destination, len(r.destinations))
	copy(snapshot, r.destinations)
	return snapshot, nil
}
