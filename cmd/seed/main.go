// Command seed populates the configured storage backend with the default
// communities and games. Safe to run repeatedly: collections that already
// hold entities are left alone.
package main

import (
	"context"
	"log"

	"atelier/internal/config"
	"atelier/internal/repository"
	"atelier/internal/seed"
	"atelier/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := server.OpenStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}

	communities := repository.NewCommunityRepository(store)
	games := repository.NewGameRepository(store)

	ctx := context.Background()
	seed.Defaults(ctx, communities, games)

	log.Printf("Seed complete: %d communities, %d games (backend: %s)",
		len(communities.GetAll(ctx)), len(games.GetAll(ctx)), cfg.StorageBackend)
}
