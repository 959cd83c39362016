package config

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger returns the process-wide structured logger.
func NewLogger() *zap.Logger {
	var logger *zap.Logger
	var err error

	if os.Getenv("GIN_MODE") == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	return logger
}
