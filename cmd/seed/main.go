package main

import (
	"flag"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/meur/crafthub/internal/catalog"
	"github.com/meur/crafthub/internal/storage"
)

func main() {
	dbPath := flag.String("db", "./crafthub.db", "SQLite database path")
	reset := flag.Bool("reset", false, "Delete stored items before seeding")
	flag.Parse()

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	if *reset {
		if err := store.DeleteAllItems(); err != nil {
			log.Fatalf("Failed to reset items: %v", err)
		}
		log.Println("✓ Cleared stored items")
	}

	items := catalog.DefaultItems()
	if err := store.BulkCreateItems(items); err != nil {
		log.Fatalf("Failed to seed items: %v", err)
	}
	log.Printf("✓ Seeded %d items", len(items))

	if _, err := store.CreateImportRun("builtin", len(items)); err != nil {
		log.Printf("Warning: failed to record import run: %v", err)
	}
	if total, err := store.CountItems(); err == nil {
		log.Printf("📦 Database holds %d items", total)
	}
	if runs, err := store.GetImportRuns(); err == nil && len(runs) > 0 {
		log.Printf("📜 %d import run(s), latest %q %s", len(runs), runs[0].Source, humanize.Time(runs[0].CreatedAt))
	}

	log.Println("🌱 Seeding complete!")
}
