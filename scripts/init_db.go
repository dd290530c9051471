package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/safar/techstore/internal/config"
	"github.com/safar/techstore/internal/store"
)

// Creates the schema and seeds the sample catalog against DATABASE_URL.
// Usage: go run scripts/init_db.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Ping database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.Init(ctx, db); err != nil {
		log.Fatalf("Initialize schema: %v", err)
	}
	log.Printf("Schema ready")

	if err := store.Seed(ctx, db); err != nil {
		log.Fatalf("Seed catalog: %v", err)
	}
	log.Printf("Catalog seeded")
}
