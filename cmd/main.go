package main

import (
	"go.uber.org/zap"

	"github.com/danretegan/slim-mom-backend/config"
	"github.com/danretegan/slim-mom-backend/logger"
	"github.com/danretegan/slim-mom-backend/routes"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	r := routes.SetupRouter(db)
	logger.Info("server is running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
