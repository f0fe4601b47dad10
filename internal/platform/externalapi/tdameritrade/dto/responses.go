// Package dto defines data transfer objects for the TD Ameritrade API responses.
package dto

import "github.com/shopspring/decimal"

// Watchlist represents one element of the accounts/{accountId}/watchlists response.
type Watchlist struct {
	Name           string          `json:"name" validate:"required"`
	WatchlistItems []WatchlistItem `json:"watchlistItems" validate:"dive"`
}

// WatchlistItem is a tracked symbol with its held quantity.
type WatchlistItem struct {
	Symbol   string          `json:"symbol" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"`
}

// PriceHistory represents the marketdata/{symbol}/pricehistory response.
type PriceHistory struct {
	Symbol  string   `json:"symbol"`
	Empty   bool     `json:"empty"`
	Candles []Candle `json:"candles" validate:"required,dive"`
}

// Candle is one OHLCV bar. Datetime is epoch milliseconds.
type Candle struct {
	Datetime *int64   `json:"datetime" validate:"required"`
	Open     *float64 `json:"open" validate:"required"`
	High     *float64 `json:"high" validate:"required"`
	Low      *float64 `json:"low" validate:"required"`
	Close    *float64 `json:"close" validate:"required"`
	Volume   int64    `json:"volume"`
}

// Balances represents the accounts/{accountId}/balances response.
type Balances struct {
	SecuritiesAccount *SecuritiesAccount `json:"securitiesAccount" validate:"required"`
}

// SecuritiesAccount holds the balance sections of an account.
type SecuritiesAccount struct {
	InitialBalances *InitialBalances `json:"initialBalances" validate:"required"`
}

// InitialBalances holds start-of-day balances.
type InitialBalances struct {
	AvailableFunds *decimal.Decimal `json:"availableFunds" validate:"required"`
}

// Quote is the per-symbol value of the marketdata/quotes response,
// which is keyed by symbol.
type Quote struct {
	Symbol    string           `json:"symbol"`
	LastPrice *decimal.Decimal `json:"lastPrice" validate:"required"`
}
