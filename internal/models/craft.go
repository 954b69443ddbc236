package models

// BonusFlags toggles the optional resource return bonuses
type BonusFlags struct {
	City  bool `json:"city"`
	Focus bool `json:"focus"`
	Event bool `json:"event"`
}

// CraftRow is the cost/profit breakdown of one location.
// Nil cost or profit means the value is unavailable, never zero.
type CraftRow struct {
	City            string `json:"city"`
	CostInstantBuy  *int64 `json:"cost_instant_buy"`
	CostBuyOrder    *int64 `json:"cost_buy_order"`
	RevenueSell     int64  `json:"revenue_sell"`
	RevenueBuyOrder int64  `json:"revenue_buy_order"`
	ProfitInstant   *int64 `json:"profit_instant"`
	ProfitOrder     *int64 `json:"profit_order"`
	HasResourceData bool   `json:"has_resource_data"`
	Best            bool   `json:"best"`

	Display CraftRowDisplay `json:"display"`
}

// CraftRowDisplay holds the formatted silver values of a CraftRow, "-" when
// a value is unavailable
type CraftRowDisplay struct {
	CostInstantBuy  string `json:"cost_instant_buy"`
	CostBuyOrder    string `json:"cost_buy_order"`
	RevenueSell     string `json:"revenue_sell"`
	RevenueBuyOrder string `json:"revenue_buy_order"`
	ProfitInstant   string `json:"profit_instant"`
	ProfitOrder     string `json:"profit_order"`
}

// ResourcePrice is the sell/buy price of one recipe resource in one city
type ResourcePrice struct {
	City         string `json:"city"`
	SellPriceMin int64  `json:"sell_price_min"`
	BuyPriceMax  int64  `json:"buy_price_max"`
}

// ResourceRow lists a recipe resource with its prices in every location
type ResourceRow struct {
	ItemID   string          `json:"item_id"`
	Quantity int             `json:"quantity"`
	Prices   []ResourcePrice `json:"prices"`
}

// CraftTable is the full craft economics result for one item
type CraftTable struct {
	ItemID     string        `json:"item_id"`
	Region     string        `json:"region,omitempty"`
	Bonuses    BonusFlags    `json:"bonuses"`
	ReturnRate float64       `json:"return_rate"`
	Resources  []ResourceRow `json:"resources"`
	Rows       []CraftRow    `json:"rows"`
}
