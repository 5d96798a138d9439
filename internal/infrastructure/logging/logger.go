package logging

import (
	"os"

	"go.uber.org/zap"
)

var logger *zap.Logger

func init() {
	if os.Getenv("DEBUG") == "true" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
}

func L() *zap.Logger {
	return logger
}

func With(fields ...zap.Field) *zap.Logger {
	return logger.With(fields...)
}
