package main

import (
	"os"

	"laptop-store-api/internal/app"
	"laptop-store-api/internal/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger.Initialize(os.Getenv("APP_ENV"))
	defer logger.Sync()

	if err := app.RunConsumer(); err != nil {
		logger.Log.Fatal("consumer failed", zap.Error(err))
	}
}
