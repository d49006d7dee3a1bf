package response_models

type Destination struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	State           string   `json:"state"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	BestTimeToVisit string   `json:"bestTimeToVisit,omitempty"`
	LocalFood       []string `json:"localFood,omitempty"`
	TravelTips      string   `json:"travelTips,omitempty"`
}

type PopularDestination struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
