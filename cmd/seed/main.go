package main

import (
	"database/sql"
	"os"

	"laptop-store-api/internal/pkg/logger"
	"laptop-store-api/internal/shared/database/seed"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger.Initialize(os.Getenv("APP_ENV"))
	defer logger.Sync()

	db, err := sql.Open("postgres", os.Getenv("DB_URL"))
	if err != nil {
		logger.Log.Fatal("cannot connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := seed.SeedUsers(db); err != nil {
		logger.Log.Fatal("seeding users failed", zap.Error(err))
	}
	if err := seed.SeedLaptops(db); err != nil {
		logger.Log.Fatal("seeding laptops failed", zap.Error(err))
	}

	logger.Log.Info("seeding complete")
}
