package db

import (
	"fmt"

	"greeting-api/internal/app/greeting"
	"greeting-api/internal/app/message"
	"greeting-api/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	if cfg.DBDriver == "sqlite" {
		logger.Info("Connected to SQLite", zap.String("path", cfg.SQLitePath))
	} else {
		logger.Info("Connected to PostgreSQL",
			zap.String("host", cfg.DBHost),
			zap.String("database", cfg.DBName),
		)
	}

	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "", "postgres":
		return postgres.Open(cfg.PostgresDSN()), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath + "?_foreign_keys=1"), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Models lists every table owned by the application, parents first.
func Models() []interface{} {
	return []interface{}{
		&greeting.Greeting{},
		&message.Message{},
	}
}

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	logger.Info("Database schema migrated", zap.Int("tables", len(Models())))
	return nil
}
