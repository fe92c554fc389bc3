package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/danretegan/slim-mom-backend/logger"
	"github.com/danretegan/slim-mom-backend/models"
)

type Config struct {
	Port      string
	JWTSecret string
	DSN       string
}

// Load reads .env (optional) and the environment. A missing JWT_SECRET is
// surfaced later by the auth middleware, not here.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using environment as-is")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	return Config{
		Port:      port,
		JWTSecret: os.Getenv("JWT_SECRET"),
		DSN:       dsn,
	}
}

// InitDB opens the database and migrates the schema. The handle is returned
// rather than stored in a package global; callers inject it into the
// services that need it.
func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ConsumedProduct{},
		&models.DailyIntake{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	logger.Info("connected to database", zap.String("dbname", os.Getenv("DB_NAME")))
	return db, nil
}
