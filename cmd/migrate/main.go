package main

// Run database migrations and seed the catalog:
//   go run ./cmd/migrate

import (
	"context"
	"log"
	"os"

	"toolintel-backend/internal/catalog"
	"toolintel-backend/internal/shared/config"
	"toolintel-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	if os.Getenv("SEED_CATALOG") == "true" {
		if err := catalog.Seed(ctx, &catalog.PGRepo{DB: sqlDB}); err != nil {
			log.Printf("failed to seed catalog: %v", err)
			os.Exit(1)
		}
		log.Printf("catalog seeded")
	}
}
