package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"Food-Sustainability-Backend/cmd/config"
	migration "Food-Sustainability-Backend/cmd/database/migrate"
	"Food-Sustainability-Backend/internal/utils"
	"Food-Sustainability-Backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"go.uber.org/zap"
)

func main() {
	cfg, err := utils.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := utils.InitLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	s3, err := storage.NewAwsS3(context.Background(), cfg)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	application, err := config.NewApp(config.Dependencies{
		DB:      db,
		Config:  cfg,
		Storage: s3,
	})
	if err != nil {
		log.Fatalf("init app: %v", err)
	}

	if cfg.ExpiryDigestCron != "" {
		scheduler, err := application.ExpiryDigest.Schedule(cfg.ExpiryDigestCron)
		if err != nil {
			log.Fatalf("schedule expiry digest: %v", err)
		}
		defer scheduler.Stop()
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		zap.L().Info("shutting down")
		_ = application.App.Shutdown()
	}()

	if err := application.App.Listen(":" + cfg.AppPort); err != nil {
		zap.L().Error("server stopped", zap.Error(err))
	}
}
