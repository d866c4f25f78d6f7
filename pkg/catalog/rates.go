package catalog

import "strings"

// fallbackCents are average residential rates in cents per kWh used when the
// user does not know their rate.
var fallbackCents = map[string]float64{
	"CA":      22.47,
	"TX":      12.56,
	"NY":      19.72,
	"FL":      12.17,
	"IL":      13.12,
	"PA":      14.76,
	"OH":      13.02,
	"GA":      12.69,
	"NC":      12.11,
	"MI":      17.45,
	"default": 15.00,
}

// FallbackRate returns the average rate in dollars per kWh for a two letter US
// state code. Unknown states get the national default and ok is false.
func FallbackRate(state string) (rate float64, ok bool) {
	cents, ok := fallbackCents[strings.ToUpper(strings.TrimSpace(state))]
	if !ok {
		cents = fallbackCents["default"]
	}
	return cents / 100, ok
}
