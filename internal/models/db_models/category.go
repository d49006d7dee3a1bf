package db_models

// Destination categories form a closed set.
const (
	CategoryHistorical = "historical"
	CategoryNature     = "nature"
	CategorySpiritual  = "spiritual"
	CategoryCultural   = "cultural"
	CategoryAdventure  = "adventure"
)

// CategoryPriority is the order the recommendation selector walks when
// diversifying results. Changing it changes which destination leads a
// recommendation list, so treat it as part of the API contract.
var CategoryPriority = []string{
	CategoryHistorical,
	CategoryNature,
	CategorySpiritual,
	CategoryCultural,
	CategoryAdventure,
}
