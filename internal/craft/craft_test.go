package craft

import (
	"errors"
	"math"
	"testing"

	"github.com/meur/crafthub/internal/models"
)

var bag = models.Item{
	ID:     "T4_BAG",
	Tier:   4,
	Recipe: []models.RecipeLine{{ItemID: "T4_LEATHER", Quantity: 8}},
}

func quote(itemID, city string, sell, buy int64) models.PriceQuote {
	return models.PriceQuote{ItemID: itemID, City: city, Quality: 1, SellPriceMin: sell, BuyPriceMax: buy}
}

func rowFor(t *testing.T, table models.CraftTable, city string) models.CraftRow {
	t.Helper()
	for _, r := range table.Rows {
		if r.City == city {
			return r
		}
	}
	t.Fatalf("no row for %s", city)
	return models.CraftRow{}
}

func TestReturnRate(t *testing.T) {
	tests := []struct {
		flags models.BonusFlags
		want  float64
	}{
		{models.BonusFlags{}, 0.152},
		{models.BonusFlags{City: true}, 0.305},
		{models.BonusFlags{Focus: true}, 0.444},
		{models.BonusFlags{Event: true}, 0.252},
		{models.BonusFlags{City: true, Focus: true, Event: true}, 0.697},
	}
	for _, tt := range tests {
		if got := ReturnRate(tt.flags); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ReturnRate(%+v) = %v, want %v", tt.flags, got, tt.want)
		}
	}
}

func TestComputeBagExample(t *testing.T) {
	quotes := []models.PriceQuote{
		quote("T4_LEATHER", "Lymhurst", 100, 0),
		quote("T4_BAG", "Lymhurst", 900, 0),
		quote("T4_LEATHER", "Caerleon", 0, 95),
		quote("T4_BAG", "Caerleon", 1000, 800),
	}
	table, err := Compute(bag, quotes, []string{"Lymhurst", "Caerleon"}, models.BonusFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lym := rowFor(t, table, "Lymhurst")
	if !lym.HasResourceData {
		t.Fatalf("expected resource data at Lymhurst")
	}
	if lym.CostInstantBuy == nil || *lym.CostInstantBuy != 678 {
		t.Fatalf("expected cost 678, got %v", lym.CostInstantBuy)
	}
	// No buy bid for leather: the buy-order cost falls back to the sell price.
	if lym.CostBuyOrder == nil || *lym.CostBuyOrder != 678 {
		t.Fatalf("expected buy-order cost 678, got %v", lym.CostBuyOrder)
	}
	if lym.ProfitInstant == nil || *lym.ProfitInstant != 222 {
		t.Fatalf("expected profit 222, got %v", lym.ProfitInstant)
	}
	if lym.ProfitOrder != nil {
		t.Fatalf("expected no order profit without a buy bid, got %d", *lym.ProfitOrder)
	}
	if !lym.Best {
		t.Fatalf("expected Lymhurst to be best")
	}

	cae := rowFor(t, table, "Caerleon")
	if cae.HasResourceData {
		t.Fatalf("expected missing resource data at Caerleon")
	}
	if cae.CostInstantBuy != nil || cae.CostBuyOrder != nil {
		t.Fatalf("expected unavailable costs at Caerleon")
	}
	if cae.ProfitInstant != nil || cae.ProfitOrder != nil {
		t.Fatalf("expected unavailable profit at Caerleon, not zero")
	}
	if cae.RevenueSell != 1000 || cae.RevenueBuyOrder != 800 {
		t.Fatalf("unexpected revenue %d/%d", cae.RevenueSell, cae.RevenueBuyOrder)
	}
	if cae.Best {
		t.Fatalf("Caerleon must not be best")
	}
}

func TestComputeMissingQuoteIsNotZeroCost(t *testing.T) {
	table, err := Compute(bag, nil, []string{"Martlock"}, models.BonusFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := rowFor(t, table, "Martlock")
	if row.HasResourceData || row.CostInstantBuy != nil || row.ProfitInstant != nil {
		t.Fatalf("expected unavailable row, got %+v", row)
	}
}

func TestComputeBuyOrderCost(t *testing.T) {
	quotes := []models.PriceQuote{
		quote("T4_LEATHER", "Thetford", 100, 80),
		quote("T4_BAG", "Thetford", 900, 700),
	}
	table, err := Compute(bag, quotes, []string{"Thetford"}, models.BonusFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := rowFor(t, table, "Thetford")
	// 8 * 80 * 0.848 = 542.72
	if *row.CostBuyOrder != 543 {
		t.Fatalf("expected 543, got %d", *row.CostBuyOrder)
	}
	// 700 - 542.72 = 157.28, rounded once
	if row.ProfitOrder == nil || *row.ProfitOrder != 157 {
		t.Fatalf("expected 157, got %v", row.ProfitOrder)
	}
}

func TestComputeRoundsOnce(t *testing.T) {
	item := models.Item{
		ID: "T4_THING",
		Recipe: []models.RecipeLine{
			{ItemID: "T4_A", Quantity: 1},
			{ItemID: "T4_B", Quantity: 1},
		},
	}
	// Each line costs 3 * 0.848 = 2.544.
	quotes := []models.PriceQuote{
		quote("T4_A", "Bridgewatch", 3, 0),
		quote("T4_B", "Bridgewatch", 3, 0),
		quote("T4_THING", "Bridgewatch", 10, 0),
	}
	table, _ := Compute(item, quotes, []string{"Bridgewatch"}, models.BonusFlags{})
	row := rowFor(t, table, "Bridgewatch")
	// 2.544 + 2.544 = 5.088 -> 5 (per-line rounding would give 3 + 3 = 6)
	if *row.CostInstantBuy != 5 {
		t.Fatalf("expected 5, got %d", *row.CostInstantBuy)
	}
	// 10 - 5.088 = 4.912 -> 5
	if *row.ProfitInstant != 5 {
		t.Fatalf("expected 5, got %d", *row.ProfitInstant)
	}
}

func TestComputeCostScalesWithQuantityAndBonuses(t *testing.T) {
	quotes := []models.PriceQuote{quote("T4_LEATHER", "Lymhurst", 1000, 0)}

	cost := func(qty int, flags models.BonusFlags) int64 {
		item := models.Item{ID: "T4_BAG", Recipe: []models.RecipeLine{{ItemID: "T4_LEATHER", Quantity: qty}}}
		table, err := Compute(item, quotes, []string{"Lymhurst"}, flags)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return *table.Rows[0].CostInstantBuy
	}

	if c1, c2 := cost(10, models.BonusFlags{}), cost(20, models.BonusFlags{}); c2 != 2*c1 {
		t.Fatalf("expected linear scaling, got %d and %d", c1, c2)
	}

	none := cost(10, models.BonusFlags{})
	city := cost(10, models.BonusFlags{City: true})
	cityFocus := cost(10, models.BonusFlags{City: true, Focus: true})
	all := cost(10, models.BonusFlags{City: true, Focus: true, Event: true})
	if !(none > city && city > cityFocus && cityFocus > all) {
		t.Fatalf("expected strictly decreasing costs, got %d %d %d %d", none, city, cityFocus, all)
	}
	// 10 * 1000 * (1 - 0.305)
	if city != 6950 {
		t.Fatalf("expected 6950, got %d", city)
	}
}

func TestComputeNoRecipe(t *testing.T) {
	_, err := Compute(models.Item{ID: "T4_ORE"}, nil, []string{"Lymhurst"}, models.BonusFlags{})
	if !errors.Is(err, ErrNoRecipe) {
		t.Fatalf("expected ErrNoRecipe, got %v", err)
	}
}

func TestComputeIgnoresOtherQualities(t *testing.T) {
	quotes := []models.PriceQuote{
		quote("T4_LEATHER", "Lymhurst", 100, 0),
		{ItemID: "T4_BAG", City: "Lymhurst", Quality: 3, SellPriceMin: 5000},
	}
	table, _ := Compute(bag, quotes, []string{"Lymhurst"}, models.BonusFlags{})
	row := rowFor(t, table, "Lymhurst")
	if row.RevenueSell != 0 || row.ProfitInstant != nil {
		t.Fatalf("expected quality 3 quote to be ignored, got %+v", row)
	}
}

func TestComputeResourceRows(t *testing.T) {
	quotes := []models.PriceQuote{quote("T4_LEATHER", "Lymhurst", 100, 90)}
	table, _ := Compute(bag, quotes, []string{"Lymhurst", "Martlock"}, models.BonusFlags{})
	if len(table.Resources) != 1 {
		t.Fatalf("expected one resource row, got %d", len(table.Resources))
	}
	res := table.Resources[0]
	if res.ItemID != "T4_LEATHER" || res.Quantity != 8 || len(res.Prices) != 2 {
		t.Fatalf("unexpected resource row %+v", res)
	}
	if res.Prices[0].SellPriceMin != 100 || res.Prices[0].BuyPriceMax != 90 || res.Prices[1].SellPriceMin != 0 {
		t.Fatalf("unexpected resource prices %+v", res.Prices)
	}
}

func ptr(v int64) *int64 { return &v }

func TestMarkBest(t *testing.T) {
	rows := []models.CraftRow{
		{City: "A", ProfitInstant: ptr(50)},
		{City: "B", ProfitInstant: ptr(120)},
		{City: "C", ProfitInstant: nil},
		{City: "D", ProfitInstant: ptr(120)},
		{City: "E", ProfitInstant: ptr(-10)},
	}
	MarkBest(rows)
	want := map[string]bool{"A": false, "B": true, "C": false, "D": true, "E": false}
	for _, r := range rows {
		if r.Best != want[r.City] {
			t.Errorf("%s: best = %v, want %v", r.City, r.Best, want[r.City])
		}
	}
}

func TestMarkBestRequiresPositiveProfit(t *testing.T) {
	rows := []models.CraftRow{
		{City: "A", ProfitInstant: ptr(0)},
		{City: "B", ProfitInstant: ptr(-5)},
		{City: "C"},
	}
	MarkBest(rows)
	for _, r := range rows {
		if r.Best {
			t.Fatalf("%s must not be best when no profit is positive", r.City)
		}
	}
}

func TestRoundPtrHalvesGoUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{2.5, 3},
		{2.4999, 2},
		{-0.5, 0},
		{-1.5, -1},
		{-1.5001, -2},
	}
	for _, tt := range tests {
		if got := *roundPtr(tt.in); got != tt.want {
			t.Errorf("roundPtr(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestComputeNegativeHalfProfitRoundsUp(t *testing.T) {
	item := models.Item{ID: "T4_THING", Recipe: []models.RecipeLine{{ItemID: "T4_A", Quantity: 1}}}
	quotes := []models.PriceQuote{
		quote("T4_A", "Martlock", 100, 0),
		quote("T4_THING", "Martlock", 69, 0),
	}
	table, err := Compute(item, quotes, []string{"Martlock"}, models.BonusFlags{City: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := rowFor(t, table, "Martlock")
	// 100 * (1 - 0.305) = 69.5, so profit is 69 - 69.5 = -0.5
	if *row.CostInstantBuy != 70 {
		t.Fatalf("expected cost 70, got %d", *row.CostInstantBuy)
	}
	if *row.ProfitInstant != 0 {
		t.Fatalf("expected profit 0, got %d", *row.ProfitInstant)
	}
}

func TestComputeFillsDisplay(t *testing.T) {
	quotes := []models.PriceQuote{
		quote("T4_LEATHER", "Lymhurst", 1000, 0),
		quote("T4_BAG", "Lymhurst", 9000, 0),
		quote("T4_BAG", "Caerleon", 12000, 8000),
	}
	table, _ := Compute(bag, quotes, []string{"Lymhurst", "Caerleon"}, models.BonusFlags{})

	lym := rowFor(t, table, "Lymhurst").Display
	// 8 * 1000 * 0.848 = 6784
	if lym.CostInstantBuy != "6,784" || lym.RevenueSell != "9,000" || lym.ProfitInstant != "2,216" {
		t.Fatalf("unexpected Lymhurst display %+v", lym)
	}
	if lym.RevenueBuyOrder != "-" || lym.ProfitOrder != "-" {
		t.Fatalf("expected placeholders without a buy bid, got %+v", lym)
	}

	cae := rowFor(t, table, "Caerleon").Display
	if cae.CostInstantBuy != "-" || cae.ProfitInstant != "-" || cae.RevenueBuyOrder != "8,000" {
		t.Fatalf("unexpected Caerleon display %+v", cae)
	}
}
