// Package usecase implements the watchlist volatility and portfolio report.
package usecase

import "errors"

var (
	// ErrWatchlistNotFound is returned when no watchlist with the configured name exists.
	ErrWatchlistNotFound = errors.New("watchlist not found")

	// ErrInvalidConfig is returned when the report configuration is unusable.
	ErrInvalidConfig = errors.New("invalid report config")
)
