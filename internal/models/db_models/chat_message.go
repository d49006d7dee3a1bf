package db_models

// ChatMessage is one entry of the append-only conversation log. IsBot stays a
// string flag ("true"/"false") for wire compatibility with existing clients.
// Recommendations holds the bot's recommendation list as raw JSON so the same
// record shape works for both the in-memory and the Postgres repository.
type ChatMessage struct {
	BaseModel
	Message         string `gorm:"not null"`
	IsBot           string `gorm:"not null"`
	Timestamp       string `gorm:"not null;index"`
	Location        *string
	Recommendations []byte `gorm:"type:jsonb"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
