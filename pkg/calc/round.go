package calc

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds v half away from zero to the given number of decimal places.
// It rounds the shortest decimal representation of v rather than its binary
// value, so Round(1.005, 2) is 1.01.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Round2 rounds to cents.
func Round2(v float64) float64 {
	return Round(v, 2)
}

// Percentage returns part as a percentage of whole rounded to one decimal
// place. A zero whole yields zero rather than an error.
func Percentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return Round(part/whole*100, 1)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
