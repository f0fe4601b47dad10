package entity

import "time"

// Candle represents one OHLCV bar of a price-history series.
type Candle struct {
	Time   time.Time // Start of the bar (UTC)
	Open   float64   // Opening price
	High   float64   // Highest price during the bar
	Low    float64   // Lowest price during the bar
	Close  float64   // Closing price
	Volume int64     // Traded volume
}

// Range returns the high-low spread of the bar.
func (c Candle) Range() float64 {
	return c.High - c.Low
}
