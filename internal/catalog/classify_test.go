package catalog

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		category    string
		subcategory string
		want        string
	}{
		{"Cape", "Cape", "cape"},
		{"Bag", "Bag", "bag"},
		{"Mounts", "Riding Horse", "mount"},
		{"Accessories", "Swiftclaw Bear", "mount"},
		{"Cloth Armor", "Cloth Helmet", "cloth_armor"},
		{"Plate Armor", "Plate Shoes", "plate_armor"},
		{"Weapons", "Broadsword", "sword"},
		{"Weapons", "Light Crossbow", "crossbow"},
		{"Weapons", "Warbow", "bow"},
		{"Weapons", "Great Fire Staff", "fire_staff"},
		{"Weapons", "Shapeshifter Staff", "shapeshifter_staff"},
		{"Off-Hand", "Shield", "offhand"},
		{"Off-Hand", "Misc", "offhand"},
		{"Consumable", "Healing Potion", "potion"},
		{"Consumable", "Fish Sandwich", "food"},
		{"Furniture", "Chest", "misc"},
		{"", "", "misc"},
	}
	for _, tt := range tests {
		if got := Classify(tt.category, tt.subcategory); got != tt.want {
			t.Errorf("Classify(%q, %q) = %q, want %q", tt.category, tt.subcategory, got, tt.want)
		}
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	// Matches both the cape and the sword heuristics; accessories come first.
	if got := Classify("Cape", "Sword"); got != "cape" {
		t.Fatalf("expected cape, got %q", got)
	}
	// Armor before weapons.
	if got := Classify("Leather Armor", "Hammer"); got != "leather_armor" {
		t.Fatalf("expected leather_armor, got %q", got)
	}
	// Weapons before off-hands: a "mace" subcategory wins over "horn".
	if got := Classify("Weapons", "Horned Mace"); got != "mace" {
		t.Fatalf("expected mace, got %q", got)
	}
}

func TestClassifyWithCustomOrder(t *testing.T) {
	rules := []ClassificationRule{
		{Name: "b", CategoryID: "second", Match: subcategoryHas("x")},
		{Name: "a", CategoryID: "first", Match: subcategoryHas("x")},
	}
	if got := ClassifyWith(rules, "", "x"); got != "second" {
		t.Fatalf("expected earlier rule to win, got %q", got)
	}
}

func TestClassificationRulesTargetKnownCategories(t *testing.T) {
	for _, rule := range ClassificationRules {
		if _, ok := CategoryName(rule.CategoryID); !ok {
			t.Errorf("rule %q targets unknown category %q", rule.Name, rule.CategoryID)
		}
	}
}

func TestGuessResource(t *testing.T) {
	tests := map[string]string{
		"cape":    "CLOTH",
		"bag":     "LEATHER",
		"mount":   "LEATHER",
		"offhand": "PLANKS",
		"potion":  "HERB",
		"sword":   "RESOURCE",
	}
	for cat, want := range tests {
		if got := GuessResource(cat); got != want {
			t.Errorf("GuessResource(%q) = %q, want %q", cat, got, want)
		}
	}
}

func TestCityBonusCities(t *testing.T) {
	tests := []struct {
		baseID string
		want   []string
	}{
		{"MAIN_SWORD", []string{"Thetford"}},
		{"2H_CROSSBOW", []string{"Bridgewatch"}},
		{"2H_BOW", []string{"Lymhurst"}},
		{"METALBAR", []string{"Fort Sterling"}},
		{"HEAD_CLOTH_SET1", []string{}},
		{"BAG", []string{}},
	}
	for _, tt := range tests {
		if got := CityBonusCities(tt.baseID); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("CityBonusCities(%q) = %v, want %v", tt.baseID, got, tt.want)
		}
	}
}
