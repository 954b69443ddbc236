// Package craft computes crafting cost and profit per city from market quotes.
package craft

import (
	"errors"
	"math"

	"github.com/meur/crafthub/internal/format"
	"github.com/meur/crafthub/internal/models"
)

// Resource return rates. Bonuses are additive on top of the base rate.
const (
	BaseReturnRate  = 0.152
	CityReturnRate  = 0.153
	FocusReturnRate = 0.292
	EventReturnRate = 0.10
)

// ErrNoRecipe is returned for items that cannot be crafted
var ErrNoRecipe = errors.New("item has no crafting recipe")

// ReturnRate is the fraction of resources refunded under flags
func ReturnRate(flags models.BonusFlags) float64 {
	rate := BaseReturnRate
	if flags.City {
		rate += CityReturnRate
	}
	if flags.Focus {
		rate += FocusReturnRate
	}
	if flags.Event {
		rate += EventReturnRate
	}
	return rate
}

// quoteKey indexes quotes by item and city
type quoteKey struct {
	itemID string
	city   string
}

// indexQuotes keeps normal quality quotes only; a later duplicate wins.
func indexQuotes(quotes []models.PriceQuote) map[quoteKey]models.PriceQuote {
	idx := make(map[quoteKey]models.PriceQuote, len(quotes))
	for _, q := range quotes {
		if q.Quality > 1 {
			continue
		}
		idx[quoteKey{q.ItemID, q.City}] = q
	}
	return idx
}

// Compute builds the per-location cost and profit table of a craftable item.
//
// Costs are summed unrounded and rounded once. A location whose quotes lack a
// sell price for any recipe resource has no cost and no profit. Profit is
// also unavailable when the matching revenue is zero.
func Compute(item models.Item, quotes []models.PriceQuote, locations []string, flags models.BonusFlags) (models.CraftTable, error) {
	if !item.Craftable() {
		return models.CraftTable{}, ErrNoRecipe
	}

	rate := ReturnRate(flags)
	multiplier := 1 - rate
	prices := indexQuotes(quotes)

	table := models.CraftTable{
		ItemID:     item.ID,
		Bonuses:    flags,
		ReturnRate: rate,
		Resources:  make([]models.ResourceRow, 0, len(item.Recipe)),
		Rows:       make([]models.CraftRow, 0, len(locations)),
	}

	for _, line := range item.Recipe {
		row := models.ResourceRow{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Prices:   make([]models.ResourcePrice, 0, len(locations)),
		}
		for _, city := range locations {
			q := prices[quoteKey{line.ItemID, city}]
			row.Prices = append(row.Prices, models.ResourcePrice{
				City:         city,
				SellPriceMin: q.SellPriceMin,
				BuyPriceMax:  q.BuyPriceMax,
			})
		}
		table.Resources = append(table.Resources, row)
	}

	for _, city := range locations {
		var costInstant, costOrder float64
		hasResourceData := true

		for _, line := range item.Recipe {
			q, ok := prices[quoteKey{line.ItemID, city}]
			if !ok || q.SellPriceMin == 0 {
				hasResourceData = false
				break
			}
			orderPrice := q.BuyPriceMax
			if orderPrice == 0 {
				orderPrice = q.SellPriceMin
			}
			qty := float64(line.Quantity)
			costInstant += qty * float64(q.SellPriceMin) * multiplier
			costOrder += qty * float64(orderPrice) * multiplier
		}

		crafted := prices[quoteKey{item.ID, city}]
		row := models.CraftRow{
			City:            city,
			RevenueSell:     crafted.SellPriceMin,
			RevenueBuyOrder: crafted.BuyPriceMax,
			HasResourceData: hasResourceData,
		}
		if hasResourceData {
			row.CostInstantBuy = roundPtr(costInstant)
			row.CostBuyOrder = roundPtr(costOrder)
			if crafted.SellPriceMin != 0 {
				row.ProfitInstant = roundPtr(float64(crafted.SellPriceMin) - costInstant)
			}
			if crafted.BuyPriceMax != 0 {
				row.ProfitOrder = roundPtr(float64(crafted.BuyPriceMax) - costOrder)
			}
		}
		row.Display = display(row)
		table.Rows = append(table.Rows, row)
	}

	MarkBest(table.Rows)
	return table, nil
}

// MarkBest flags every row whose instant profit equals the highest instant
// profit, provided that maximum is strictly positive.
func MarkBest(rows []models.CraftRow) {
	var best *int64
	for _, r := range rows {
		if r.ProfitInstant == nil {
			continue
		}
		if best == nil || *r.ProfitInstant > *best {
			v := *r.ProfitInstant
			best = &v
		}
	}
	for i := range rows {
		rows[i].Best = best != nil && *best > 0 &&
			rows[i].ProfitInstant != nil && *rows[i].ProfitInstant == *best
	}
}

// roundPtr rounds to the nearest integer with halves going up, so -0.5
// rounds to 0 and -1.5 to -1.
func roundPtr(v float64) *int64 {
	r := int64(math.Floor(v + 0.5))
	return &r
}

func display(row models.CraftRow) models.CraftRowDisplay {
	return models.CraftRowDisplay{
		CostInstantBuy:  format.SilverPtr(row.CostInstantBuy),
		CostBuyOrder:    format.SilverPtr(row.CostBuyOrder),
		RevenueSell:     format.Silver(row.RevenueSell),
		RevenueBuyOrder: format.Silver(row.RevenueBuyOrder),
		ProfitInstant:   format.SilverPtr(row.ProfitInstant),
		ProfitOrder:     format.SilverPtr(row.ProfitOrder),
	}
}
