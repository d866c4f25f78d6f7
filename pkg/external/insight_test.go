package external

import (
	"testing"

	"github.com/energywise/energywise/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherInsight(t *testing.T) {
	assert.Nil(t, WeatherInsight(nil, types.UsageSelection{Appliances: []string{"heater"}}))

	tests := []struct {
		name     string
		temp     float64
		selected []string
		want     string
	}{
		{
			"hot with AC",
			30, []string{"tv", "airConditioner"},
			"It's 30°C outside. Consider using fans instead of AC when possible to reduce costs.",
		},
		{
			"hot without AC",
			30, []string{"tv"},
			"Current temperature: 30°C. Weather conditions are optimal for energy efficiency.",
		},
		{
			"cold with heater",
			8.5, []string{"heater"},
			"It's 8.5°C outside. Set your heater to 20°C for optimal comfort and efficiency.",
		},
		{
			"boundary is neutral",
			25, []string{"airConditioner"},
			"Current temperature: 25°C. Weather conditions are optimal for energy efficiency.",
		},
		{
			"mild",
			22, []string{"heater", "airConditioner"},
			"Current temperature: 22°C. Weather conditions are optimal for energy efficiency.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &types.WeatherContext{Temperature: tt.temp, Condition: "Clouds"}
			got := WeatherInsight(w, types.UsageSelection{Appliances: tt.selected})
			require.NotNil(t, got)
			assert.Equal(t, tt.temp, got.Temperature)
			assert.Equal(t, "Clouds", got.Condition)
			assert.Equal(t, tt.want, got.Recommendation)
		})
	}
}
