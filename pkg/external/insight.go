package external

import (
	"fmt"
	"strconv"

	"github.com/energywise/energywise/pkg/types"
)

// WeatherInsight builds the weather annotation for a cost breakdown. It
// returns nil when weather is nil.
func WeatherInsight(weather *types.WeatherContext, selection types.UsageSelection) *types.WeatherInsight {
	if weather == nil {
		return nil
	}
	return &types.WeatherInsight{
		Temperature:    weather.Temperature,
		Condition:      weather.Condition,
		Recommendation: weatherRecommendation(weather.Temperature, selection),
	}
}

func weatherRecommendation(temp float64, selection types.UsageSelection) string {
	switch {
	case temp > 25 && selection.Contains("airConditioner"):
		return fmt.Sprintf("It's %s°C outside. Consider using fans instead of AC when possible to reduce costs.", formatTemp(temp))
	case temp < 15 && selection.Contains("heater"):
		return fmt.Sprintf("It's %s°C outside. Set your heater to 20°C for optimal comfort and efficiency.", formatTemp(temp))
	default:
		return fmt.Sprintf("Current temperature: %s°C. Weather conditions are optimal for energy efficiency.", formatTemp(temp))
	}
}

func formatTemp(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}
