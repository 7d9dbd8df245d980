package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. APP_ENV=production switches to the
// JSON production config; anything else gets the console development one.
func New() *zap.Logger {
	if os.Getenv("APP_ENV") == "production" {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		l, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		return l
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return l
}
