package catalog

import (
	"reflect"
	"testing"

	"github.com/meur/crafthub/internal/models"
)

func TestFlattenCategoriesPreOrder(t *testing.T) {
	flat := FlattenCategories(Categories())
	if len(flat) == 0 {
		t.Fatalf("expected categories")
	}
	wantPrefix := []string{"equipment", "weapon", "axe", "bow"}
	for i, id := range wantPrefix {
		if flat[i].ID != id {
			t.Fatalf("position %d: got %q, want %q", i, flat[i].ID, id)
		}
	}
	if last := flat[len(flat)-1]; last.ID != "resource" {
		t.Fatalf("expected resource last, got %q", last.ID)
	}

	seen := map[string]bool{}
	for _, e := range flat {
		if seen[e.ID] {
			t.Fatalf("duplicate category id %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestCategoryPath(t *testing.T) {
	tests := []struct {
		id   string
		want []string
	}{
		{"sword", []string{"equipment", "weapon", "sword"}},
		{"bag", []string{"equipment", "accessories", "bag"}},
		{"consumable", []string{"consumable"}},
		{"resource", []string{"resources", "resource"}},
		{"unknown", nil},
	}
	for _, tt := range tests {
		if got := CategoryPath(tt.id, Categories()); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("CategoryPath(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestCatalogCategoriesAreLeaves(t *testing.T) {
	leaves := map[string]bool{}
	var walk func(nodes []models.CategoryNode)
	walk = func(nodes []models.CategoryNode) {
		for _, n := range nodes {
			if n.IsLeaf() {
				leaves[n.ID] = true
			}
			walk(n.Children)
		}
	}
	walk(Categories())

	for _, item := range DefaultItems() {
		if !leaves[item.CategoryID] {
			t.Errorf("%s: category %q is not a leaf", item.ID, item.CategoryID)
		}
	}
}

func TestCategoryName(t *testing.T) {
	name, ok := CategoryName("plate_armor")
	if !ok || name.EN != "Plate Armor" || name.PT != "Armadura de Placas" {
		t.Fatalf("unexpected name %+v", name)
	}
	if name, ok := CategoryName("misc"); !ok || name.EN != "Miscellaneous" {
		t.Fatalf("expected misc category, got %+v", name)
	}
	if _, ok := CategoryName("nope"); ok {
		t.Fatalf("expected unknown category")
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	tree := Categories()
	tree[0].ID = "changed"
	tree[0].Children[0].Name.EN = "changed"
	tree[0].Children = nil

	fresh := Categories()
	if fresh[0].ID != "equipment" || len(fresh[0].Children) == 0 || fresh[0].Children[0].Name.EN != "Weapon" {
		t.Fatalf("category tree was mutated through a returned copy: %+v", fresh[0])
	}
	if got := CategoryPath("sword", fresh); len(got) != 3 {
		t.Fatalf("unexpected path %v", got)
	}
}
