package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/meur/crafthub/internal/catalog"
	"github.com/meur/crafthub/internal/models"
	"github.com/meur/crafthub/internal/obs"
)

// Store persists catalog definitions. Price quotes are never stored.
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS items (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT UNIQUE NOT NULL,
			base_id TEXT NOT NULL,
			name_en TEXT NOT NULL,
			name_pt TEXT,
			category_id TEXT NOT NULL,
			category_en TEXT,
			category_pt TEXT,
			tier INTEGER NOT NULL,
			recipe TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_items_base ON items(base_id)`,
		`CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id)`,
		`CREATE TABLE IF NOT EXISTS import_runs (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			item_count INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// --- Items ---

// GetItems returns every item in insertion order
func (s *Store) GetItems() ([]models.Item, error) {
	rows, err := s.db.Query(`
		SELECT id, name_en, name_pt, category_id, category_en, category_pt, tier, recipe
		FROM items ORDER BY seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		var namePT, categoryEN, categoryPT, recipe sql.NullString
		err := rows.Scan(&item.ID, &item.Name.EN, &namePT, &item.CategoryID,
			&categoryEN, &categoryPT, &item.Tier, &recipe)
		if err != nil {
			return nil, err
		}
		item.Name.PT = namePT.String
		item.Category = models.LocalizedText{EN: categoryEN.String, PT: categoryPT.String}
		if recipe.Valid && recipe.String != "" && recipe.String != "null" {
			if err := json.Unmarshal([]byte(recipe.String), &item.Recipe); err != nil {
				return nil, fmt.Errorf("decoding recipe of %s: %w", item.ID, err)
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CountItems returns the number of stored items
func (s *Store) CountItems() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n)
	return n, err
}

// BulkCreateItems upserts items in a transaction. Existing items keep their
// original position.
func (s *Store) BulkCreateItems(items []models.Item) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO items (id, base_id, name_en, name_pt, category_id, category_en, category_pt, tier, recipe)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			base_id = excluded.base_id,
			name_en = excluded.name_en,
			name_pt = excluded.name_pt,
			category_id = excluded.category_id,
			category_en = excluded.category_en,
			category_pt = excluded.category_pt,
			tier = excluded.tier,
			recipe = excluded.recipe
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, item := range items {
		_, baseID, ok := catalog.ParseID(item.ID)
		if !ok {
			baseID = item.ID
		}
		var recipe []byte
		if len(item.Recipe) > 0 {
			if recipe, err = json.Marshal(item.Recipe); err != nil {
				return fmt.Errorf("encoding recipe of %s: %w", item.ID, err)
			}
		}
		_, err := stmt.Exec(item.ID, baseID, item.Name.EN, item.Name.PT, item.CategoryID,
			item.Category.EN, item.Category.PT, item.Tier, string(recipe))
		if err != nil {
			return fmt.Errorf("inserting %s: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

// DeleteAllItems removes every stored item
func (s *Store) DeleteAllItems() error {
	_, err := s.db.Exec(`DELETE FROM items`)
	return err
}

// --- Import runs ---

// CreateImportRun records a catalog import
func (s *Store) CreateImportRun(source string, itemCount int) (*models.ImportRun, error) {
	run := &models.ImportRun{
		ID:        uuid.New().String(),
		Source:    source,
		ItemCount: itemCount,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(`
		INSERT INTO import_runs (id, source, item_count, created_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.Source, run.ItemCount, run.CreatedAt)
	if err != nil {
		return nil, err
	}
	obs.Logger.Info("import run recorded", "id", run.ID, "source", source, "items", itemCount)
	return run, nil
}

// GetImportRuns returns import runs, newest first
func (s *Store) GetImportRuns() ([]models.ImportRun, error) {
	rows, err := s.db.Query(`
		SELECT id, source, item_count, created_at
		FROM import_runs ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.ImportRun
	for rows.Next() {
		var r models.ImportRun
		if err := rows.Scan(&r.ID, &r.Source, &r.ItemCount, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LoadCatalog builds an immutable catalog from the stored items, or returns
// nil when the store is empty.
func (s *Store) LoadCatalog() (*catalog.Catalog, error) {
	n, err := s.CountItems()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	items, err := s.GetItems()
	if err != nil {
		return nil, err
	}
	return catalog.New(items), nil
}

// LatestImportRun returns the most recent import run, or nil when none was
// recorded
func (s *Store) LatestImportRun() (*models.ImportRun, error) {
	runs, err := s.GetImportRuns()
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}
