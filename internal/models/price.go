package models

import (
	"encoding/json"
	"strings"
	"time"
)

// TimestampLayout is the zone-less layout used by the price API (UTC)
const TimestampLayout = "2006-01-02T15:04:05"

// Timestamp is a price API date. The API reports missing dates as
// 0001-01-01T00:00:00, which decodes to the zero time.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON parses the API layout, tolerating an RFC 3339 zone suffix
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(TimestampLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	t.Time = parsed.UTC()
	return nil
}

// MarshalJSON writes the API layout, or an empty string for the zero time
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.UTC().Format(TimestampLayout))
}

// PriceQuote is one (item, city, quality) record of the price API.
// A zero price means "no data", never a real price.
type PriceQuote struct {
	ItemID         string    `json:"item_id"`
	City           string    `json:"city"`
	Quality        int       `json:"quality"`
	SellPriceMin   int64     `json:"sell_price_min"`
	SellPriceMinAt Timestamp `json:"sell_price_min_date"`
	SellPriceMax   int64     `json:"sell_price_max"`
	SellPriceMaxAt Timestamp `json:"sell_price_max_date"`
	BuyPriceMin    int64     `json:"buy_price_min"`
	BuyPriceMinAt  Timestamp `json:"buy_price_min_date"`
	BuyPriceMax    int64     `json:"buy_price_max"`
	BuyPriceMaxAt  Timestamp `json:"buy_price_max_date"`
}

// CityPrice is a single priced city row of a market view
type CityPrice struct {
	City    string    `json:"city"`
	Price   int64     `json:"price"`
	Display string    `json:"display"`
	Date    Timestamp `json:"date"`
	Age     string    `json:"age"`
	Best    bool      `json:"best"`
}

// MarketView is the per-city sell/buy summary of one item
type MarketView struct {
	ItemID     string      `json:"item_id"`
	Region     string      `json:"region"`
	SellOrders []CityPrice `json:"sell_orders"`
	BuyOrders  []CityPrice `json:"buy_orders"`
	BestSell   int64       `json:"best_sell"`
	BestBuy    int64       `json:"best_buy"`
}
