package main

import (
	"context"
	"database/sql"
	"fmt"
	"itinerary-service/internal/adapters/cache"
	"itinerary-service/internal/adapters/repositories"
	"itinerary-service/internal/api"
	"itinerary-service/internal/config"
	"itinerary-service/internal/platform/db"
	"itinerary-service/internal/ports"
	"itinerary-service/internal/services"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	session := services.NewEditSession()
	session.DefaultStart = cfg.DayStartMillis()

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeRepo()

	snapshots, closeCache, err := openSnapshotCache(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	// Seed demo data on startup for local runs.
	if cfg.SeedPath != "" {
		if _, statErr := os.Stat(cfg.SeedPath); statErr == nil {
			if _, err := services.SeedFromJSON(context.Background(), cfg.SeedPath, session, repo, snapshots); err != nil {
				log.Fatal(err)
			}
		} else {
			log.Printf("seed file not found path=%s (skipping)", cfg.SeedPath)
		}
	}

	router := api.NewRouter(repo, snapshots, session)

	log.Printf("Server listening addr=:%s driver=%s cache=%t", cfg.Port, cfg.DBDriver, snapshots != nil)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openRepository(cfg *config.Config) (ports.ItineraryRepository, func(), error) {
	switch cfg.DBDriver {
	case "memory":
		return repositories.NewMemoryItineraryRepository(), func() {}, nil

	case "postgres":
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := initSchema(conn); err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLItineraryRepository(conn), func() { conn.Close() }, nil

	default:
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("open repository: create %q: %w", dir, err)
			}
		}
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := initSchema(conn); err != nil {
			return nil, nil, err
		}
		return repositories.NewSqliteItineraryRepository(conn), func() { conn.Close() }, nil
	}
}

func initSchema(conn *sql.DB) error {
	if err := repositories.InitSchema(conn); err != nil {
		conn.Close()
		return fmt.Errorf("open repository: %w", err)
	}
	return nil
}

// openSnapshotCache returns a nil cache when REDIS_ADDR is unset; reads then
// go straight to the repository.
func openSnapshotCache(cfg *config.Config) (ports.SnapshotCache, func(), error) {
	if cfg.RedisAddr == "" {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("open snapshot cache: ping redis %q: %w", cfg.RedisAddr, err)
	}

	return cache.NewRedisSnapshotCache(client, cfg.CacheTTL), func() { client.Close() }, nil
}
