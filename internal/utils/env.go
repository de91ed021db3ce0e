package utils

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv loads .env (or the given files) into the process environment.
// It runs before the logger exists, so the outcome is reported later via ReportEnv.
func LoadEnv(files ...string) error {
	return godotenv.Load(files...)
}

func ReportEnv(logger *zap.Logger, err error) {
	if err != nil {
		logger.Warn("ENV file not found or failed to load, using defaults")
	} else {
		logger.Info("ENV file loaded successfully")
	}
}
