package catalog

import (
	"strconv"

	"github.com/meur/crafthub/internal/models"
)

var (
	craftTiers    = []int{4, 5, 6, 7, 8}
	resourceTiers = []int{3, 4, 5, 6, 7, 8}
)

// Craftable builds one item per tier, each consuming quantity units of the
// tier-matched resource.
func Craftable(baseID, nameEN, namePT, categoryID string, tiers []int, resourceID string, quantity int) []models.Item {
	category, _ := CategoryName(categoryID)
	items := make([]models.Item, 0, len(tiers))
	for _, t := range tiers {
		marker := " (T" + strconv.Itoa(t) + ")"
		items = append(items, models.Item{
			ID:         TierID(t, baseID),
			Name:       models.LocalizedText{EN: nameEN + marker, PT: namePT + marker},
			Category:   category,
			CategoryID: categoryID,
			Tier:       t,
			Recipe:     []models.RecipeLine{{ItemID: TierID(t, resourceID), Quantity: quantity}},
		})
	}
	return items
}

// Resource builds one recipe-less resource item per tier
func Resource(baseID, nameEN, namePT string, tiers []int) []models.Item {
	category, _ := CategoryName("resource")
	items := make([]models.Item, 0, len(tiers))
	for _, t := range tiers {
		marker := " (T" + strconv.Itoa(t) + ")"
		items = append(items, models.Item{
			ID:         TierID(t, baseID),
			Name:       models.LocalizedText{EN: nameEN + marker, PT: namePT + marker},
			Category:   category,
			CategoryID: "resource",
			Tier:       t,
		})
	}
	return items
}

// DefaultItems returns the built-in item definitions
func DefaultItems() []models.Item {
	groups := [][]models.Item{
		// Accessories
		Craftable("BAG", "Bag", "Bolsa", "bag", craftTiers, "LEATHER", 8),
		Craftable("CAPE", "Cape", "Capa", "cape", craftTiers, "CLOTH", 12),

		// Cloth
		Craftable("HEAD_CLOTH_SET1", "Scholar Cowl", "Capuz do Estudioso", "cloth_armor", craftTiers, "CLOTH", 16),
		Craftable("ARMOR_CLOTH_SET1", "Scholar Robe", "Manto do Estudioso", "cloth_armor", craftTiers, "CLOTH", 32),
		Craftable("SHOES_CLOTH_SET1", "Scholar Sandals", "Sandálias do Estudioso", "cloth_armor", craftTiers, "CLOTH", 16),
		Craftable("HEAD_CLOTH_SET2", "Cleric Cowl", "Capuz do Clérigo", "cloth_armor", craftTiers, "CLOTH", 16),
		Craftable("ARMOR_CLOTH_SET2", "Cleric Robe", "Manto do Clérigo", "cloth_armor", craftTiers, "CLOTH", 32),
		Craftable("SHOES_CLOTH_SET2", "Cleric Sandals", "Sandálias do Clérigo", "cloth_armor", craftTiers, "CLOTH", 16),

		// Leather
		Craftable("HEAD_LEATHER_SET1", "Mercenary Hood", "Capuz do Mercenário", "leather_armor", craftTiers, "LEATHER", 16),
		Craftable("ARMOR_LEATHER_SET1", "Mercenary Jacket", "Jaqueta do Mercenário", "leather_armor", craftTiers, "LEATHER", 32),
		Craftable("SHOES_LEATHER_SET1", "Mercenary Shoes", "Sapatos do Mercenário", "leather_armor", craftTiers, "LEATHER", 16),
		Craftable("HEAD_LEATHER_SET2", "Hunter Hood", "Capuz do Caçador", "leather_armor", craftTiers, "LEATHER", 16),
		Craftable("ARMOR_LEATHER_SET2", "Hunter Jacket", "Jaqueta do Caçador", "leather_armor", craftTiers, "LEATHER", 32),
		Craftable("SHOES_LEATHER_SET2", "Hunter Shoes", "Sapatos do Caçador", "leather_armor", craftTiers, "LEATHER", 16),

		// Plate
		Craftable("HEAD_PLATE_SET1", "Soldier Helmet", "Elmo do Soldado", "plate_armor", craftTiers, "METALBAR", 16),
		Craftable("ARMOR_PLATE_SET1", "Soldier Armor", "Armadura do Soldado", "plate_armor", craftTiers, "METALBAR", 32),
		Craftable("SHOES_PLATE_SET1", "Soldier Boots", "Botas do Soldado", "plate_armor", craftTiers, "METALBAR", 16),
		Craftable("HEAD_PLATE_SET2", "Knight Helmet", "Elmo do Cavaleiro", "plate_armor", craftTiers, "METALBAR", 16),
		Craftable("ARMOR_PLATE_SET2", "Knight Armor", "Armadura do Cavaleiro", "plate_armor", craftTiers, "METALBAR", 32),
		Craftable("SHOES_PLATE_SET2", "Knight Boots", "Botas do Cavaleiro", "plate_armor", craftTiers, "METALBAR", 16),

		// Weapons
		Craftable("MAIN_SWORD", "Broadsword", "Espada Larga", "sword", craftTiers, "METALBAR", 20),
		Craftable("2H_CLAYMORE", "Claymore", "Claymore", "sword", craftTiers, "METALBAR", 32),
		Craftable("MAIN_AXE", "Battleaxe", "Machado de Batalha", "axe", craftTiers, "METALBAR", 20),
		Craftable("2H_HALBERD", "Halberd", "Alabarda", "axe", craftTiers, "METALBAR", 32),
		Craftable("2H_BOW", "Bow", "Arco", "bow", craftTiers, "PLANKS", 32),
		Craftable("2H_LONGBOW", "Longbow", "Arco Longo", "bow", craftTiers, "PLANKS", 32),
		Craftable("MAIN_FIRESTAFF", "Fire Staff", "Cajado de Fogo", "fire_staff", craftTiers, "METALBAR", 20),
		Craftable("2H_FIRESTAFF", "Great Fire Staff", "Grande Cajado de Fogo", "fire_staff", craftTiers, "METALBAR", 32),
		Craftable("MAIN_FROSTSTAFF", "Frost Staff", "Cajado de Gelo", "frost_staff", craftTiers, "METALBAR", 20),
		Craftable("MAIN_CURSEDSTAFF", "Cursed Staff", "Cajado Maldito", "cursed_staff", craftTiers, "METALBAR", 20),
		Craftable("MAIN_HOLYSTAFF", "Holy Staff", "Cajado Sagrado", "holy_staff", craftTiers, "METALBAR", 20),
		Craftable("MAIN_ARCANESTAFF", "Arcane Staff", "Cajado Arcano", "arcane_staff", craftTiers, "METALBAR", 20),
		Craftable("MAIN_NATURESTAFF", "Nature Staff", "Cajado da Natureza", "nature_staff", craftTiers, "PLANKS", 20),
		Craftable("MAIN_DAGGER", "Dagger", "Adaga", "dagger", craftTiers, "METALBAR", 20),
		Craftable("2H_DAGGERPAIR", "Dagger Pair", "Par de Adagas", "dagger", craftTiers, "METALBAR", 32),
		Craftable("MAIN_HAMMER", "Hammer", "Martelo", "hammer", craftTiers, "METALBAR", 20),
		Craftable("2H_POLEHAMMER", "Polehammer", "Martelo de Guerra", "hammer", craftTiers, "METALBAR", 32),
		Craftable("2H_CROSSBOW", "Crossbow", "Besta", "crossbow", craftTiers, "METALBAR", 32),
		Craftable("MAIN_MACE", "Mace", "Maça", "mace", craftTiers, "METALBAR", 20),
		Craftable("2H_QUARTERSTAFF", "Quarterstaff", "Cajado de Combate", "quarterstaff", craftTiers, "PLANKS", 32),
		Craftable("MAIN_SPEAR", "Spear", "Lança", "spear", craftTiers, "METALBAR", 20),

		// Off-hands
		Craftable("OFF_SHIELD", "Shield", "Escudo", "offhand", craftTiers, "METALBAR", 12),
		Craftable("OFF_BOOK", "Tome of Spells", "Tomo de Feitiços", "offhand", craftTiers, "METALBAR", 12),

		// Refined resources
		Resource("LEATHER", "Leather", "Couro", resourceTiers),
		Resource("METALBAR", "Metal Bar", "Barra de Metal", resourceTiers),
		Resource("PLANKS", "Planks", "Tábuas", resourceTiers),
		Resource("CLOTH", "Cloth", "Tecido", resourceTiers),
		Resource("STONEBLOCK", "Stone Block", "Bloco de Pedra", resourceTiers),

		// Raw resources
		Resource("HIDE", "Hide", "Pele", resourceTiers),
		Resource("ORE", "Ore", "Minério", resourceTiers),
		Resource("WOOD", "Wood", "Madeira", resourceTiers),
		Resource("FIBER", "Fiber", "Fibra", resourceTiers),
		Resource("ROCK", "Rock", "Pedra", resourceTiers),
	}

	var items []models.Item
	for _, g := range groups {
		items = append(items, g...)
	}
	return items
}
