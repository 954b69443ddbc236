package catalog

import (
	"regexp"
	"slices"
	"strconv"

	"github.com/meur/crafthub/internal/models"
)

var (
	idRegex         = regexp.MustCompile(`^T(\d+)_(.+)$`)
	tierMarkerRegex = regexp.MustCompile(`\s*\(T\d+\)`)
)

// ParseID splits a tier-qualified identifier such as T4_MAIN_SWORD into its
// tier and base identifier.
func ParseID(id string) (tier int, baseID string, ok bool) {
	m := idRegex.FindStringSubmatch(id)
	if m == nil {
		return 0, "", false
	}
	tier, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return tier, m[2], true
}

// TierID builds the tier-qualified identifier for a base identifier
func TierID(tier int, baseID string) string {
	return "T" + strconv.Itoa(tier) + "_" + baseID
}

// StripTierMarker removes the "(T4)" style marker from a display name
func StripTierMarker(name string) string {
	return tierMarkerRegex.ReplaceAllString(name, "")
}

// GroupByBaseID groups items by their tier-stripped identifier. Items whose
// identifier is not of the T<tier>_<baseId> form are left out. The result
// keeps first-seen order; the display name and category come from the first
// item seen for each base identifier.
func GroupByBaseID(items []models.Item) []models.BaseItem {
	index := make(map[string]int)
	var out []models.BaseItem

	for _, item := range items {
		tier, baseID, ok := ParseID(item.ID)
		if !ok {
			continue
		}

		idx, exists := index[baseID]
		if !exists {
			index[baseID] = len(out)
			out = append(out, models.BaseItem{
				ID: baseID,
				Name: models.LocalizedText{
					EN: StripTierMarker(item.Name.EN),
					PT: StripTierMarker(item.Name.PT),
				},
				CategoryID: item.CategoryID,
				Tiers:      []int{tier},
			})
			continue
		}

		entry := &out[idx]
		if !slices.Contains(entry.Tiers, tier) {
			entry.Tiers = append(entry.Tiers, tier)
			slices.Sort(entry.Tiers)
		}
	}

	return out
}

// FlattenBaseItems expands base items back into one item per tier, with the
// tier marker appended to the names.
func FlattenBaseItems(bases []models.BaseItem) []models.Item {
	var out []models.Item
	for _, b := range bases {
		for _, tier := range b.Tiers {
			marker := " (T" + strconv.Itoa(tier) + ")"
			out = append(out, models.Item{
				ID:         TierID(tier, b.ID),
				Name:       models.LocalizedText{EN: b.Name.EN + marker, PT: b.Name.PT + marker},
				CategoryID: b.CategoryID,
				Tier:       tier,
			})
		}
	}
	return out
}
