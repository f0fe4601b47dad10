package usecase

import (
	"math"

	"volatility_report/internal/feature/report/domain/entity"
)

// minVolatilityBars is the smallest series with a defined sample standard deviation.
const minVolatilityBars = 2

// IntradayVolatility returns the sample standard deviation (N-1 denominator)
// of the per-bar high-low range. ok is false when fewer than two bars are
// given or the result is not a finite number.
func IntradayVolatility(candles []entity.Candle) (vol float64, ok bool) {
	n := len(candles)
	if n < minVolatilityBars {
		return 0, false
	}

	var sum float64
	for _, c := range candles {
		sum += c.Range()
	}
	mean := sum / float64(n)

	var sq float64
	for _, c := range candles {
		d := c.Range() - mean
		sq += d * d
	}

	vol = math.Sqrt(sq / float64(n-1))
	if math.IsNaN(vol) || math.IsInf(vol, 0) {
		return 0, false
	}
	return vol, true
}
