package greeting

import "time"

type Greeting struct {
	ID   uint64  `json:"id" gorm:"primaryKey"`
	Text *string `json:"text"`
	// Messages is derived from messages.greeting_id on read and ignored on write.
	Messages []MessageSummary `json:"messages,omitempty" gorm:"foreignKey:GreetingID"`
}

func (Greeting) TableName() string {
	return "greeting"
}

func (g *Greeting) GetID() uint64 {
	return g.ID
}

// MessageSummary is the read-only view of a message as seen from its greeting.
type MessageSummary struct {
	ID         uint64     `json:"id"`
	Text       *string    `json:"text"`
	Timestamp  *time.Time `json:"timestamp"`
	GreetingID *uint64    `json:"-"`
}

func (MessageSummary) TableName() string {
	return "messages"
}

// Merge copies the non-nil fields of patch onto existing.
func Merge(existing, patch *Greeting) {
	if patch.Text != nil {
		existing.Text = patch.Text
	}
}
