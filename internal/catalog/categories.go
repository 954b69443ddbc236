package catalog

import (
	"github.com/meur/crafthub/internal/models"
)

func node(id, en, pt string, children ...models.CategoryNode) models.CategoryNode {
	return models.CategoryNode{
		ID:       id,
		Name:     models.LocalizedText{EN: en, PT: pt},
		Children: children,
	}
}

var categoryTree = []models.CategoryNode{
	node("equipment", "Equipment", "Equipamento",
		node("weapon", "Weapon", "Armas",
			node("axe", "Axe", "Machado"),
			node("bow", "Bow", "Arco"),
			node("crossbow", "Crossbow", "Besta"),
			node("dagger", "Dagger", "Adaga"),
			node("fire_staff", "Fire Staff", "Cajado de Fogo"),
			node("frost_staff", "Frost Staff", "Cajado de Gelo"),
			node("hammer", "Hammer", "Martelo"),
			node("holy_staff", "Holy Staff", "Cajado Sagrado"),
			node("mace", "Mace", "Maça"),
			node("nature_staff", "Nature Staff", "Cajado da Natureza"),
			node("quarterstaff", "Quarterstaff", "Cajado de Combate"),
			node("spear", "Spear", "Lança"),
			node("sword", "Sword", "Espada"),
			node("arcane_staff", "Arcane Staff", "Cajado Arcano"),
			node("cursed_staff", "Cursed Staff", "Cajado Maldito"),
			node("shapeshifter_staff", "Shapeshifter Staff", "Cajado Metamorfo"),
			node("offhand", "Off-Hand", "Mão Secundária"),
		),
		node("armor", "Armor", "Armaduras",
			node("cloth_armor", "Cloth Armor", "Armadura de Tecido"),
			node("leather_armor", "Leather Armor", "Armadura de Couro"),
			node("plate_armor", "Plate Armor", "Armadura de Placas"),
		),
		node("accessories", "Accessories", "Acessórios",
			node("bag", "Bag", "Bolsa"),
			node("cape", "Cape", "Capa"),
			node("mount", "Mount", "Montaria"),
		),
	),
	node("consumable", "Consumable", "Consumível",
		node("potion", "Potion", "Poção"),
		node("food", "Food", "Comida"),
	),
	node("resources", "Resources", "Recursos",
		node("resource", "Resource", "Recurso"),
	),
}

// MiscCategory is the catch-all category of the classifier. It is not part
// of the tree.
var MiscCategory = models.CategoryEntry{
	ID:   "misc",
	Name: models.LocalizedText{EN: "Miscellaneous", PT: "Diversos"},
}

// Categories returns a copy of the category tree
func Categories() []models.CategoryNode {
	return cloneNodes(categoryTree)
}

func cloneNodes(nodes []models.CategoryNode) []models.CategoryNode {
	if nodes == nil {
		return nil
	}
	out := make([]models.CategoryNode, len(nodes))
	for i, n := range nodes {
		out[i] = n
		out[i].Children = cloneNodes(n.Children)
	}
	return out
}

// FlattenCategories lists every node of the tree in pre-order
func FlattenCategories(nodes []models.CategoryNode) []models.CategoryEntry {
	var flat []models.CategoryEntry
	for _, n := range nodes {
		flat = append(flat, models.CategoryEntry{ID: n.ID, Name: n.Name})
		if len(n.Children) > 0 {
			flat = append(flat, FlattenCategories(n.Children)...)
		}
	}
	return flat
}

// CategoryPath returns the ids from the root down to id, or nil when the id
// is not in the tree.
func CategoryPath(id string, nodes []models.CategoryNode) []string {
	for _, n := range nodes {
		if n.ID == id {
			return []string{n.ID}
		}
		if len(n.Children) > 0 {
			if path := CategoryPath(id, n.Children); path != nil {
				return append([]string{n.ID}, path...)
			}
		}
	}
	return nil
}

// CategoryName returns the localized name of a category id
func CategoryName(id string) (models.LocalizedText, bool) {
	if id == MiscCategory.ID {
		return MiscCategory.Name, true
	}
	for _, e := range FlattenCategories(categoryTree) {
		if e.ID == id {
			return e.Name, true
		}
	}
	return models.LocalizedText{}, false
}
