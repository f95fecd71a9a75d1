package main

import (
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/config"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/logger"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	created, err := models.SeedProducts(models.DB)
	if err != nil {
		stdLog.Fatalf("Failed to seed catalog: %v", err)
	}
	stdLog.Printf("Catalog seed finished: %d products created", created)
}
