package market

import (
	"time"

	"github.com/meur/crafthub/internal/format"
	"github.com/meur/crafthub/internal/models"
)

// BuildMarketView summarizes the quotes of one item per city. Cities without
// an ask (or bid) are left out of the sell (or buy) rows. The best sell is
// the lowest ask, the best buy the highest bid.
func BuildMarketView(itemID string, quotes []models.PriceQuote, locations []string, now time.Time) models.MarketView {
	byCity := make(map[string]models.PriceQuote, len(quotes))
	for _, q := range quotes {
		if q.ItemID != itemID || q.Quality > 1 {
			continue
		}
		byCity[q.City] = q
	}

	view := models.MarketView{
		ItemID:     itemID,
		SellOrders: []models.CityPrice{},
		BuyOrders:  []models.CityPrice{},
	}

	for _, city := range locations {
		q, ok := byCity[city]
		if !ok {
			continue
		}
		if q.SellPriceMin > 0 {
			view.SellOrders = append(view.SellOrders, cityPrice(city, q.SellPriceMin, q.SellPriceMinAt, now))
			if view.BestSell == 0 || q.SellPriceMin < view.BestSell {
				view.BestSell = q.SellPriceMin
			}
		}
		if q.BuyPriceMax > 0 {
			view.BuyOrders = append(view.BuyOrders, cityPrice(city, q.BuyPriceMax, q.BuyPriceMaxAt, now))
			if q.BuyPriceMax > view.BestBuy {
				view.BestBuy = q.BuyPriceMax
			}
		}
	}

	for i := range view.SellOrders {
		view.SellOrders[i].Best = view.SellOrders[i].Price == view.BestSell
	}
	for i := range view.BuyOrders {
		view.BuyOrders[i].Best = view.BuyOrders[i].Price == view.BestBuy
	}
	return view
}

func cityPrice(city string, price int64, at models.Timestamp, now time.Time) models.CityPrice {
	return models.CityPrice{
		City:    city,
		Price:   price,
		Display: format.Silver(price),
		Date:    at,
		Age:     format.Age(at.Time, now),
	}
}
