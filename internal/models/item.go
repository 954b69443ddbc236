package models

// Supported display locales
const (
	LocaleEN = "en"
	LocalePT = "pt"
)

// LocalizedText holds a string in every supported locale
type LocalizedText struct {
	EN string `json:"en"`
	PT string `json:"pt"`
}

// Get returns the text for locale, falling back to English
func (t LocalizedText) Get(locale string) string {
	if locale == LocalePT {
		return t.PT
	}
	return t.EN
}

// RecipeLine is a single resource requirement of a recipe
type RecipeLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Item is a tier-qualified catalog entry, e.g. T4_BAG
type Item struct {
	ID         string        `json:"id"`
	Name       LocalizedText `json:"name"`
	Category   LocalizedText `json:"category"`
	CategoryID string        `json:"category_id"`
	Tier       int           `json:"tier"`
	Recipe     []RecipeLine  `json:"recipe,omitempty"` // nil = not craftable
}

// Craftable reports whether the item has a recipe
func (i Item) Craftable() bool {
	return len(i.Recipe) > 0
}

// BaseItem groups every tier variant of one item family
type BaseItem struct {
	ID         string        `json:"id"` // identifier without the T{tier}_ prefix
	Name       LocalizedText `json:"name"`
	CategoryID string        `json:"category_id"`
	Tiers      []int         `json:"tiers"`
}

// ItemDetail is the API representation of a resolved item
type ItemDetail struct {
	Item
	BaseID      string   `json:"base_id"`
	ImageURL    string   `json:"image_url"`
	BonusCities []string `json:"bonus_cities"`
}

// ItemList is a collection of base items
type ItemList struct {
	Items      []BaseItem `json:"items"`
	TotalCount int        `json:"total_count"`
}
