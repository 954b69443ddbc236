package storage

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/meur/crafthub/internal/catalog"
	"github.com/meur/crafthub/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "crafthub.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestItemsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	items := catalog.DefaultItems()
	if err := store.BulkCreateItems(items); err != nil {
		t.Fatalf("BulkCreateItems: %v", err)
	}

	got, err := store.GetItems()
	if err != nil {
		t.Fatalf("GetItems: %v", err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("stored items differ from the definitions")
	}

	n, err := store.CountItems()
	if err != nil || n != len(items) {
		t.Fatalf("CountItems = %d, %v", n, err)
	}
}

func TestBulkCreateItemsUpsertKeepsOrder(t *testing.T) {
	store := newTestStore(t)

	first := []models.Item{
		{ID: "T4_A", Name: models.LocalizedText{EN: "A"}, CategoryID: "misc", Tier: 4},
		{ID: "T4_B", Name: models.LocalizedText{EN: "B"}, CategoryID: "misc", Tier: 4},
	}
	if err := store.BulkCreateItems(first); err != nil {
		t.Fatalf("BulkCreateItems: %v", err)
	}
	update := []models.Item{
		{ID: "T4_A", Name: models.LocalizedText{EN: "A2"}, CategoryID: "misc", Tier: 4,
			Recipe: []models.RecipeLine{{ItemID: "T4_CLOTH", Quantity: 1}}},
		{ID: "T4_C", Name: models.LocalizedText{EN: "C"}, CategoryID: "misc", Tier: 4},
	}
	if err := store.BulkCreateItems(update); err != nil {
		t.Fatalf("BulkCreateItems: %v", err)
	}

	got, err := store.GetItems()
	if err != nil {
		t.Fatalf("GetItems: %v", err)
	}
	if len(got) != 3 || got[0].ID != "T4_A" || got[1].ID != "T4_B" || got[2].ID != "T4_C" {
		t.Fatalf("unexpected order %+v", got)
	}
	if got[0].Name.EN != "A2" || len(got[0].Recipe) != 1 {
		t.Fatalf("expected T4_A to be updated, got %+v", got[0])
	}
	if got[1].Recipe != nil {
		t.Fatalf("expected nil recipe, got %+v", got[1].Recipe)
	}
}

func TestLoadCatalog(t *testing.T) {
	store := newTestStore(t)

	c, err := store.LoadCatalog()
	if err != nil || c != nil {
		t.Fatalf("expected nil catalog for an empty store, got %v, %v", c, err)
	}

	if err := store.BulkCreateItems(catalog.DefaultItems()); err != nil {
		t.Fatalf("BulkCreateItems: %v", err)
	}
	c, err = store.LoadCatalog()
	if err != nil || c == nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if _, ok := c.Resolve("T8_2H_CLAYMORE"); !ok {
		t.Fatalf("expected catalog to contain stored items")
	}

	if err := store.DeleteAllItems(); err != nil {
		t.Fatalf("DeleteAllItems: %v", err)
	}
	if n, _ := store.CountItems(); n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
}

func TestImportRuns(t *testing.T) {
	store := newTestStore(t)

	run, err := store.CreateImportRun("weapons.json", 42)
	if err != nil {
		t.Fatalf("CreateImportRun: %v", err)
	}
	if run.ID == "" || run.ItemCount != 42 {
		t.Fatalf("unexpected run %+v", run)
	}
	if _, err := store.CreateImportRun("armors.json", 7); err != nil {
		t.Fatalf("CreateImportRun: %v", err)
	}

	runs, err := store.GetImportRuns()
	if err != nil {
		t.Fatalf("GetImportRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID == runs[1].ID {
		t.Fatalf("expected distinct run ids")
	}
}

func TestLatestImportRun(t *testing.T) {
	store := newTestStore(t)

	run, err := store.LatestImportRun()
	if err != nil || run != nil {
		t.Fatalf("expected no run on a fresh store, got %+v, %v", run, err)
	}

	if _, err := store.CreateImportRun("builtin", 10); err != nil {
		t.Fatalf("CreateImportRun: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := store.CreateImportRun("weapons.json", 3); err != nil {
		t.Fatalf("CreateImportRun: %v", err)
	}

	run, err = store.LatestImportRun()
	if err != nil || run == nil {
		t.Fatalf("LatestImportRun: %+v, %v", run, err)
	}
	if run.Source != "weapons.json" || run.ItemCount != 3 {
		t.Fatalf("expected the newest run, got %+v", run)
	}
}
