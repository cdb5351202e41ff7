package common

import "math"

// MiniBar is a sub period segment where only the endpoints are known.
// TimeFraction is the position of the segment within the parent bar, in [0, 1].
type MiniBar struct {
	TimeFraction float64 `json:"time_fraction"`
	OpenPrice    float64 `json:"open"`
	ClosePrice   float64 `json:"close"`
}

// MiniBarPrices flattens mini bars into the price sequence walked by the fill
// walker: o0, c0, o1, c1, ...
func MiniBarPrices(miniBars []MiniBar) []float64 {
	prices := make([]float64, 0, 2*len(miniBars))
	for _, mb := range miniBars {
		prices = append(prices, mb.OpenPrice, mb.ClosePrice)
	}
	return prices
}

// MiniBarRange summarizes mini bars into one bar. The second result is false
// when there are no mini bars.
func MiniBarRange(symbol string, miniBars []MiniBar) (Bar, bool) {
	if len(miniBars) == 0 {
		return Bar{}, false
	}

	bar := Bar{
		Symbol: symbol,
		Open:   miniBars[0].OpenPrice,
		Close:  miniBars[len(miniBars)-1].ClosePrice,
		High:   math.Inf(-1),
		Low:    math.Inf(1),
	}
	for _, mb := range miniBars {
		bar.High = math.Max(bar.High, math.Max(mb.OpenPrice, mb.ClosePrice))
		bar.Low = math.Min(bar.Low, math.Min(mb.OpenPrice, mb.ClosePrice))
	}
	return bar, true
}
