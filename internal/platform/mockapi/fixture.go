// Package mockapi serves a local fake of the brokerage REST API from an in-memory fixture.
package mockapi

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

// Fixture is the canned data the fake API serves.
type Fixture struct {
	AccessToken    string              `json:"accessToken"`
	AccountID      string              `json:"accountId"`
	Watchlists     []Watchlist         `json:"watchlists"`
	Candles        map[string][]Candle `json:"candles"`
	AvailableFunds float64             `json:"availableFunds"`
	LastPrices     map[string]float64  `json:"lastPrices"`
	// FailStatus forces an HTTP status for a route key:
	// "watchlists", "balances", "pricehistory:<SYMBOL>", "quotes:<SYMBOL>".
	FailStatus map[string]int `json:"failStatus"`
}

// Watchlist is a fixture watchlist.
type Watchlist struct {
	Name  string          `json:"name"`
	Items []WatchlistItem `json:"watchlistItems"`
}

// WatchlistItem is a fixture watchlist entry.
type WatchlistItem struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
}

// Candle is a fixture bar; Datetime is epoch milliseconds.
type Candle struct {
	Datetime int64   `json:"datetime"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   int64   `json:"volume"`
}

// LoadFixture reads a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f Fixture
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// DemoFixture returns a small account with two watchlists and five days of
// synthetic 5-minute bars per symbol.
func DemoFixture() *Fixture {
	start := time.Date(2023, 1, 9, 14, 30, 0, 0, time.UTC)
	return &Fixture{
		AccessToken: "mock-token",
		AccountID:   "123456789",
		Watchlists: []Watchlist{
			{Name: "Default", Items: []WatchlistItem{{Symbol: "SPY", Quantity: 1}}},
			{Name: "My Watchlist", Items: []WatchlistItem{
				{Symbol: "AAPL", Quantity: 10},
				{Symbol: "MSFT", Quantity: 5},
				{Symbol: "NVDA", Quantity: 2},
			}},
		},
		Candles: map[string][]Candle{
			"AAPL": syntheticBars(start, 150, 0.8),
			"MSFT": syntheticBars(start, 300, 1.5),
			"NVDA": syntheticBars(start, 250, 3.2),
			"SPY":  syntheticBars(start, 400, 0.6),
		},
		AvailableFunds: 25000,
		LastPrices:     map[string]float64{"AAPL": 150, "MSFT": 300, "NVDA": 250, "SPY": 400},
	}
}

// syntheticBars builds 5 sessions of 78 five-minute bars whose ranges cycle
// around spread.
func syntheticBars(start time.Time, base, spread float64) []Candle {
	const (
		days       = 5
		barsPerDay = 78
	)
	out := make([]Candle, 0, days*barsPerDay)
	for d := 0; d < days; d++ {
		session := start.AddDate(0, 0, d)
		for i := 0; i < barsPerDay; i++ {
			r := spread * (0.5 + float64((d*barsPerDay+i)%7)/6)
			open := base + float64(i%5-2)*spread/4
			out = append(out, Candle{
				Datetime: session.Add(time.Duration(i) * 5 * time.Minute).UnixMilli(),
				Open:     open,
				High:     open + r/2,
				Low:      open - r/2,
				Close:    open + r/4,
				Volume:   int64(1000 + 10*i),
			})
		}
	}
	return out
}
