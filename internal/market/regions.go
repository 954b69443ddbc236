package market

import (
	"fmt"

	"github.com/meur/crafthub/internal/models"
)

// Regions lists the game server regions, each served by its own price API host
var Regions = []models.Region{
	{Key: "am", Name: "Americas", Endpoint: "https://west.albion-online-data.com/api/v2"},
	{Key: "as", Name: "Asia", Endpoint: "https://east.albion-online-data.com/api/v2"},
	{Key: "eu", Name: "Europe", Endpoint: "https://europe.albion-online-data.com/api/v2"},
}

// LookupRegion returns the region with the given key
func LookupRegion(key string) (models.Region, error) {
	for _, r := range Regions {
		if r.Key == key {
			return r, nil
		}
	}
	return models.Region{}, fmt.Errorf("%w: %q", ErrUnknownRegion, key)
}
