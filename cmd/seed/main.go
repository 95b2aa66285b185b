package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/cricket-sim/internal/refdata"
	"github.com/stitts-dev/cricket-sim/pkg/config"
	"github.com/stitts-dev/cricket-sim/pkg/database"
	"github.com/stitts-dev/cricket-sim/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		logrus.Fatal("Usage: seed [up|down|seed|verify]")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment(), log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repo := refdata.NewRepository(db.DB)
	command := os.Args[1]

	switch command {
	case "up":
		if err := repo.Migrate(ctx); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Info("Migrations completed successfully")

	case "down":
		if err := repo.Drop(ctx); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Info("Tables dropped successfully")

	case "seed":
		if err := repo.Migrate(ctx); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		if err := repo.Seed(ctx, refdata.Default()); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		log.Info("Reference data seeded successfully")

	case "verify":
		store, err := repo.Load(ctx)
		if err != nil {
			log.Fatalf("Reference data is not loadable: %v", err)
		}
		log.WithFields(logrus.Fields{
			"teams":   len(store.Teams("")),
			"venues":  len(store.Venues()),
			"players": len(store.Players("")),
		}).Info("Reference data verified")

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}
