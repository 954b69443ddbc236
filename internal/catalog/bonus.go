package catalog

import (
	"strings"
)

type cityBonus struct {
	city     string
	families []string
}

// Item families crafted or refined with the city bonus, per royal city.
var cityBonuses = []cityBonus{
	{"Bridgewatch", []string{"CROSSBOW", "DAGGER", "DAGGERPAIR", "CURSEDSTAFF", "STONEBLOCK"}},
	{"Martlock", []string{"AXE", "HALBERD", "QUARTERSTAFF", "FROSTSTAFF", "PLANKS"}},
	{"Lymhurst", []string{"BOW", "LONGBOW", "NATURESTAFF", "FIRESTAFF", "CLOTH"}},
	{"Fort Sterling", []string{"HAMMER", "POLEHAMMER", "SPEAR", "HOLYSTAFF", "METALBAR"}},
	{"Thetford", []string{"MACE", "SWORD", "CLAYMORE", "ARCANESTAFF", "LEATHER"}},
}

// CityBonusCities returns the cities granting the crafting bonus to a base
// identifier. A family matches the whole identifier or its last segment, so
// MAIN_SWORD matches SWORD while HEAD_CLOTH_SET1 does not match CLOTH.
func CityBonusCities(baseID string) []string {
	cities := []string{}
	for _, cb := range cityBonuses {
		for _, family := range cb.families {
			if baseID == family || strings.HasSuffix(baseID, "_"+family) {
				cities = append(cities, cb.city)
				break
			}
		}
	}
	return cities
}
