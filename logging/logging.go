package logging

import (
	"fmt"
	"log"
	"microservice/config"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger(appName string, config *config.Config) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	zapConfig.OutputPaths = []string{config.LogFile}
	zapConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Named(appName), nil
}

// Init builds the logger, installs it as the global zap logger and routes
// the standard library logger through it.
func Init(appName string, config *config.Config) *zap.Logger {
	logger, err := NewLogger(appName, config)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	zap.ReplaceGlobals(logger)
	zap.RedirectStdLog(logger)

	return logger
}
