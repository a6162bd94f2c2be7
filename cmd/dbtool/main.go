package main

import (
	"context"
	"database/sql"
	"itinerary-service/internal/adapters/repositories"
	"itinerary-service/internal/config"
	"itinerary-service/internal/platform/db"
	"itinerary-service/internal/services"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/itinerary.json")
	initAndSeed(db, seedPath)
}

func initAndSeed(db *sql.DB, seedPath string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	repo := repositories.NewSQLItineraryRepository(db)
	seeded, err := services.SeedFromJSON(context.Background(), seedPath, services.NewEditSession(), repo, nil)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	if seeded {
		log.Println("Seeding complete.")
	} else {
		log.Println("Seed already present, nothing to do.")
	}
}
