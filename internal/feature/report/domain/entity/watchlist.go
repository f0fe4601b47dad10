// Package entity defines the domain models for the report feature.
package entity

import "github.com/shopspring/decimal"

// WatchlistItem is one tracked symbol and the quantity held for it.
type WatchlistItem struct {
	Symbol   string          // Ticker symbol (e.g., "AAPL")
	Quantity decimal.Decimal // Held quantity; zero when the API omits it
}

// Watchlist is a named, ordered set of symbols tracked under an account.
type Watchlist struct {
	Name  string
	Items []WatchlistItem
}

// Symbols returns the distinct symbols in watchlist order.
func (w Watchlist) Symbols() []string {
	seen := make(map[string]struct{}, len(w.Items))
	out := make([]string, 0, len(w.Items))
	for _, it := range w.Items {
		if _, ok := seen[it.Symbol]; ok {
			continue
		}
		seen[it.Symbol] = struct{}{}
		out = append(out, it.Symbol)
	}
	return out
}

// QuantityOf returns the quantity of the first item matching symbol, or zero.
func (w Watchlist) QuantityOf(symbol string) decimal.Decimal {
	for _, it := range w.Items {
		if it.Symbol == symbol {
			return it.Quantity
		}
	}
	return decimal.Zero
}
