// Package catalog holds the static item definitions and the indexes derived
// from them: tier grouping, search and the category tree.
package catalog

import (
	"github.com/meur/crafthub/internal/models"
)

// Catalog is an immutable item index. It is built once and never mutated,
// so it is safe for concurrent use.
type Catalog struct {
	items     []models.Item
	byID      map[string]int
	baseItems []models.BaseItem
}

// New builds a catalog from items. Later duplicates of an identifier are
// ignored so insertion order stays stable.
func New(items []models.Item) *Catalog {
	c := &Catalog{
		items: make([]models.Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for _, item := range items {
		if _, exists := c.byID[item.ID]; exists {
			continue
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}
	c.baseItems = GroupByBaseID(c.items)
	return c
}

// Default returns a catalog over the built-in item definitions
func Default() *Catalog {
	return New(DefaultItems())
}

// Resolve returns the item with the given identifier
func (c *Catalog) Resolve(id string) (models.Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Item{}, false
	}
	return c.items[idx], true
}

// Items returns a copy of every item in insertion order
func (c *Catalog) Items() []models.Item {
	out := make([]models.Item, len(c.items))
	copy(out, c.items)
	return out
}

// BaseItems returns a copy of the tier grouping
func (c *Catalog) BaseItems() []models.BaseItem {
	out := make([]models.BaseItem, len(c.baseItems))
	copy(out, c.baseItems)
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// ResourceIDs returns the identifier set priced for a craft query: the
// crafted item followed by its recipe resources.
func ResourceIDs(item models.Item) []string {
	ids := make([]string, 0, len(item.Recipe)+1)
	ids = append(ids, item.ID)
	seen := map[string]bool{item.ID: true}
	for _, line := range item.Recipe {
		if seen[line.ItemID] {
			continue
		}
		seen[line.ItemID] = true
		ids = append(ids, line.ItemID)
	}
	return ids
}
