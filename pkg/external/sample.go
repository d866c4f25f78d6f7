package external

import (
	"fmt"
	"math"

	"github.com/energywise/energywise/pkg/types"
)

const (
	// ForecastBaseIntensity is the daily mean of the generated forecast.
	ForecastBaseIntensity = 400.0

	// ForecastSwing is the amplitude of the daily intensity curve.
	ForecastSwing = 150.0

	// CleanIntensity is the g/kWh below which an hour counts as clean.
	CleanIntensity = 350.0
)

// SampleWeather returns the weather used when no real data is available.
func SampleWeather() types.WeatherContext {
	return types.WeatherContext{
		Temperature: 22,
		FeelsLike:   21,
		Condition:   "Clear",
		Description: "clear sky",
		Humidity:    65,
		City:        "Sample City",
		Country:     "US",
		IsReal:      false,
	}
}

// SampleCarbon returns the grid carbon data used when no real data is
// available.
func SampleCarbon() types.CarbonContext {
	return types.CarbonContext{
		CarbonIntensity:      400,
		FossilFuelPercentage: 60,
		RenewablePercentage:  40,
		Zone:                 "Sample",
		Source:               "Sample Data",
		IsReal:               false,
	}
}

// Forecast returns a 24 hour carbon intensity profile around base, which
// peaks at noon and bottoms out at midnight. A base of zero or less uses
// ForecastBaseIntensity.
func Forecast(base float64) []types.HourlyIntensity {
	if math.IsNaN(base) || math.IsInf(base, 0) || base <= 0 {
		base = ForecastBaseIntensity
	}
	hours := make([]types.HourlyIntensity, 24)
	for h := range hours {
		variation := math.Sin(float64(h-6)*math.Pi/12) * ForecastSwing
		intensity := math.Round(base + variation)
		hours[h] = types.HourlyIntensity{
			Hour:      h,
			Intensity: intensity,
			Label:     HourLabel(h),
			IsClean:   intensity < CleanIntensity,
		}
	}
	return hours
}

// HourLabel formats an hour of the day on a 12 hour clock, e.g. "12 AM" or
// "3 PM".
func HourLabel(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	case h == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}
