package seeder

import (
	"fmt"
	"time"

	"greeting-api/internal/app/greeting"
	"greeting-api/internal/app/message"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedGreetings(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedGreetings() error {
	var count int64
	if err := s.db.Model(&greeting.Greeting{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count greetings: %w", err)
	}
	if count > 0 {
		s.logger.Info("Greetings already exist, skipping seed")
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		hello := &greeting.Greeting{Text: ptr("Hello, world")}
		if err := tx.Omit("Messages").Create(hello).Error; err != nil {
			return err
		}

		now := time.Now().UTC().Truncate(time.Second)
		messages := []*message.Message{
			{Text: ptr("First message"), Timestamp: &now, Greeting: hello},
			{Text: ptr("Second message"), Timestamp: &now, Greeting: hello},
		}
		if err := tx.Omit("Greeting").Create(&messages).Error; err != nil {
			return err
		}

		s.logger.Info("Seeded greetings", zap.Int("greetings", 1), zap.Int("messages", len(messages)))
		return nil
	})
}

func ptr(s string) *string {
	return &s
}
