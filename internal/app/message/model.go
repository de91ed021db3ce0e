package message

import (
	"time"

	"greeting-api/internal/app/greeting"

	"gorm.io/gorm"
)

type Message struct {
	ID        uint64     `json:"id" gorm:"primaryKey"`
	Text      *string    `json:"text"`
	Timestamp *time.Time `json:"timestamp"`
	// GreetingID is the authoritative parent link; clients address it through Greeting.
	GreetingID *uint64            `json:"-" gorm:"index"`
	Greeting   *greeting.Greeting `json:"greeting" gorm:"foreignKey:GreetingID;constraint:OnDelete:SET NULL"`
}

func (Message) TableName() string {
	return "messages"
}

func (m *Message) GetID() uint64 {
	return m.ID
}

// BeforeSave derives the foreign key from the greeting reference in the payload.
func (m *Message) BeforeSave(tx *gorm.DB) error {
	if m.Greeting != nil && m.Greeting.ID != 0 {
		id := m.Greeting.ID
		m.GreetingID = &id
	} else {
		m.GreetingID = nil
	}
	return nil
}

// Merge copies the non-nil fields of patch onto existing.
func Merge(existing, patch *Message) {
	if patch.Text != nil {
		existing.Text = patch.Text
	}
	if patch.Timestamp != nil {
		existing.Timestamp = patch.Timestamp
	}
	if patch.Greeting != nil {
		existing.Greeting = patch.Greeting
	}
}
