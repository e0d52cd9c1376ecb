package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger instance, set once at startup.
var Log *zap.Logger = zap.NewNop()

// Initialize configures the logger for the given environment.
// "production" gets JSON output, anything else a colored console.
func Initialize(env string) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	log, err := config.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic(err)
	}
	Log = log
}

func Sync() {
	_ = Log.Sync()
}
