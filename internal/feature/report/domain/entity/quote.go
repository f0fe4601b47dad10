package entity

import "github.com/shopspring/decimal"

// Quote is the latest traded price snapshot for a symbol.
type Quote struct {
	Symbol    string
	LastPrice decimal.Decimal
}

// Balance holds the account balances the report needs.
type Balance struct {
	AvailableFunds decimal.Decimal
}

// VolatilityResult is the intraday volatility of one symbol.
// Volatility is nil when the history could not be fetched or was too short.
type VolatilityResult struct {
	Symbol     string
	Volatility *float64
}

// PortfolioSummary is computed once at the end of a run.
type PortfolioSummary struct {
	TotalValue     decimal.Decimal
	AvailableFunds decimal.Decimal
}
