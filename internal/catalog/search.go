package catalog

import (
	"strings"

	"github.com/meur/crafthub/internal/models"
)

// SearchLimit caps the number of search results
const SearchLimit = 50

// Search returns base items whose localized name or base identifier contains
// query, case-insensitively. The query is matched as typed, spaces included;
// only an empty query matches everything. A non-empty categoryID restricts
// the candidates to that category first. Results keep catalog order.
func (c *Catalog) Search(query, locale, categoryID string) []models.BaseItem {
	q := strings.ToLower(query)

	out := []models.BaseItem{}
	for _, b := range c.baseItems {
		if categoryID != "" && b.CategoryID != categoryID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(b.Name.Get(locale)), q) &&
			!strings.Contains(strings.ToLower(b.ID), q) {
			continue
		}
		out = append(out, b)
		if len(out) == SearchLimit {
			break
		}
	}
	return out
}
