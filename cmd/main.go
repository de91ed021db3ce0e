package main

import (
	"fmt"
	"log"
	"os"

	"greeting-api/internal/config"
	"greeting-api/internal/db"
	"greeting-api/internal/db/seeder"
	"greeting-api/internal/utils"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	envErr := utils.LoadEnv()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer logger.Sync()

	utils.ReportEnv(logger, envErr)

	cliApp := &cli.App{
		Name:  "greeting-admin",
		Usage: "database maintenance for the greeting API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "driver",
				Usage: "database driver (postgres or sqlite); overrides DB_DRIVER",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "create or update the greeting and messages tables",
				Action: func(c *cli.Context) error {
					return withDB(c, logger, func(conn *gorm.DB) error {
						return db.Migrate(conn, logger)
					})
				},
			},
			{
				Name:  "seed",
				Usage: "migrate, then insert demo data when the tables are empty",
				Action: func(c *cli.Context) error {
					return withDB(c, logger, func(conn *gorm.DB) error {
						if err := db.Migrate(conn, logger); err != nil {
							return err
						}
						return seeder.NewSeeder(conn, logger).Seed()
					})
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		logger.Fatal("Command failed", zap.Error(err))
	}
}

func withDB(c *cli.Context, logger *zap.Logger, fn func(*gorm.DB) error) error {
	cfg := config.LoadConfig()
	if driver := c.String("driver"); driver != "" {
		cfg.DBDriver = driver
	}

	conn, err := db.Connect(&cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	if sqlDB, err := conn.DB(); err == nil {
		defer sqlDB.Close()
	}

	return fn(conn)
}
