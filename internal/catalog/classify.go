package catalog

import (
	"strings"
)

// ClassificationRule assigns CategoryID to raw game data whose lowercased
// category and subcategory labels satisfy Match.
type ClassificationRule struct {
	Name       string
	CategoryID string
	Match      func(category, subcategory string) bool
}

func categoryHas(subs ...string) func(string, string) bool {
	return func(category, _ string) bool {
		return containsAny(category, subs)
	}
}

func subcategoryHas(subs ...string) func(string, string) bool {
	return func(_, subcategory string) bool {
		return containsAny(subcategory, subs)
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ClassificationRules is evaluated top to bottom and the first match wins:
// accessories, then armor, weapons, off-hands and consumables.
// "crossbow" precedes "bow" since every crossbow label also contains "bow".
var ClassificationRules = []ClassificationRule{
	{Name: "cape", CategoryID: "cape", Match: categoryHas("cape")},
	{Name: "bag", CategoryID: "bag", Match: categoryHas("bag")},
	{Name: "mount", CategoryID: "mount", Match: func(category, subcategory string) bool {
		return strings.Contains(category, "mount") ||
			containsAny(subcategory, []string{"mount", "horse", "ox", "stag", "wolf", "boar", "bear"})
	}},

	{Name: "cloth armor", CategoryID: "cloth_armor", Match: categoryHas("cloth armor")},
	{Name: "leather armor", CategoryID: "leather_armor", Match: categoryHas("leather armor")},
	{Name: "plate armor", CategoryID: "plate_armor", Match: categoryHas("plate armor")},

	{Name: "axe", CategoryID: "axe", Match: subcategoryHas("axe")},
	{Name: "crossbow", CategoryID: "crossbow", Match: subcategoryHas("crossbow")},
	{Name: "bow", CategoryID: "bow", Match: subcategoryHas("bow")},
	{Name: "dagger", CategoryID: "dagger", Match: subcategoryHas("dagger")},
	{Name: "fire staff", CategoryID: "fire_staff", Match: subcategoryHas("fire staff")},
	{Name: "frost staff", CategoryID: "frost_staff", Match: subcategoryHas("frost staff")},
	{Name: "hammer", CategoryID: "hammer", Match: subcategoryHas("hammer")},
	{Name: "holy staff", CategoryID: "holy_staff", Match: subcategoryHas("holy staff")},
	{Name: "mace", CategoryID: "mace", Match: subcategoryHas("mace")},
	{Name: "nature staff", CategoryID: "nature_staff", Match: subcategoryHas("nature staff")},
	{Name: "quarterstaff", CategoryID: "quarterstaff", Match: subcategoryHas("quarterstaff")},
	{Name: "spear", CategoryID: "spear", Match: subcategoryHas("spear")},
	{Name: "sword", CategoryID: "sword", Match: subcategoryHas("sword")},
	{Name: "arcane staff", CategoryID: "arcane_staff", Match: subcategoryHas("arcane staff")},
	{Name: "cursed staff", CategoryID: "cursed_staff", Match: subcategoryHas("cursed staff")},
	{Name: "shapeshifter staff", CategoryID: "shapeshifter_staff", Match: subcategoryHas("shapeshifter staff")},

	{Name: "offhand kind", CategoryID: "offhand", Match: subcategoryHas("shield", "torch", "tome", "totem", "orb", "censer", "horn")},
	{Name: "offhand", CategoryID: "offhand", Match: categoryHas("off-hand")},

	{Name: "potion", CategoryID: "potion", Match: subcategoryHas("potion")},
	{Name: "food", CategoryID: "food", Match: subcategoryHas("food", "meal", "fish")},
}

// Classify assigns exactly one category id to raw game data labels, falling
// back to MiscCategory when no rule matches.
func Classify(category, subcategory string) string {
	return ClassifyWith(ClassificationRules, category, subcategory)
}

// ClassifyWith evaluates rules in order against the labels
func ClassifyWith(rules []ClassificationRule, category, subcategory string) string {
	cat := strings.ToLower(category)
	sub := strings.ToLower(subcategory)
	for _, rule := range rules {
		if rule.Match(cat, sub) {
			return rule.CategoryID
		}
	}
	return MiscCategory.ID
}

// GuessResource returns the default recipe resource for imported items of a
// category.
func GuessResource(categoryID string) string {
	switch categoryID {
	case "cape":
		return "CLOTH"
	case "bag", "mount":
		return "LEATHER"
	case "offhand":
		return "PLANKS"
	case "potion":
		return "HERB"
	default:
		return "RESOURCE"
	}
}
