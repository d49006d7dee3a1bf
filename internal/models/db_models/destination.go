package db_models

// Destination is a single catalog record. The catalog is seeded once at
// startup and never mutated afterwards, so destinations carry no gorm
// bookkeeping and are passed around by value.
type Destination struct {
	ID              string
	Name            string
	State           string
	Category        string
	Description     string
	ImageURL        string
	BestTimeToVisit string
	LocalFood       []string
	TravelTips      string
}
