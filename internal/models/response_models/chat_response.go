package response_models

// Recommendation is the projection of a catalog destination that chat clients
// render as a card.
type Recommendation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type ChatResponse struct {
	ID              string           `json:"id"`
	Message         string           `json:"message"`
	IsBot           bool             `json:"isBot"`
	Timestamp       string           `json:"timestamp"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	TravelTip       string           `json:"travelTip,omitempty"`
}

// ChatHistoryEntry mirrors the stored log record, bot and user turns alike.
type ChatHistoryEntry struct {
	ID              string           `json:"id"`
	Message         string           `json:"message"`
	IsBot           string           `json:"isBot"`
	Timestamp       string           `json:"timestamp"`
	Location        *string          `json:"location"`
	Recommendations []Recommendation `json:"recommendations"`
}
