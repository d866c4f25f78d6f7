package external

import (
	"fmt"
	"time"

	"github.com/energywise/energywise/pkg/common"
	"github.com/levenlabs/go-lflag"
)

// DefaultCacheTTL is how long a real weather or carbon reading is reused.
const DefaultCacheTTL = 5 * time.Minute

// Configured sets up the weather and carbon clients based on flags.
func Configured() *Adapter {
	weatherKey := lflag.String("openweather-api-key", "", "API key for OpenWeatherMap (sample weather is used when empty)")
	weatherURL := lflag.String("openweather-api-url", "https://api.openweathermap.org/data/2.5", "URL for the OpenWeatherMap API")
	mapsKey := lflag.String("electricity-maps-api-key", "", "API key for Electricity Maps")
	mapsURL := lflag.String("electricity-maps-api-url", "https://api.electricitymap.org/v3", "URL for the Electricity Maps API")
	signalKey := lflag.String("co2-signal-api-key", "", "API key for CO2 Signal")
	signalURL := lflag.String("co2-signal-api-url", "https://api.co2signal.com/v1", "URL for the CO2 Signal API")
	useRealWeather := lflag.Bool("use-real-weather", true, "Fetch real weather when an API key is configured")
	useRealCarbon := lflag.Bool("use-real-carbon", true, "Fetch real grid carbon data when an API key is configured")
	fallback := lflag.Bool("use-sample-fallback", true, "Return sample data when an external API fails")
	timeout := lflag.Duration("external-timeout", 5*time.Second, "Timeout for each external API request")
	cacheTTL := lflag.Duration("external-cache-ttl", DefaultCacheTTL, "How long to reuse external API results")
	defaultCity := lflag.String("default-city", "London", "City used for weather when a request does not name one")
	defaultZone := lflag.String("default-zone", "US-CAL-CISO", "Electricity Maps zone used when a request does not name one")

	a := &Adapter{}

	lflag.Do(func() {
		client := common.HTTPClient(*timeout)

		a.weather = NewWeather(*weatherURL, *weatherKey, client)
		a.weather.useReal = *useRealWeather
		a.weather.fallback = *fallback
		a.weather.cacheTTL = *cacheTTL

		a.carbon = NewCarbon(*mapsURL, *mapsKey, *signalURL, *signalKey, client)
		a.carbon.useReal = *useRealCarbon
		a.carbon.fallback = *fallback
		a.carbon.cacheTTL = *cacheTTL

		a.timeout = *timeout
		a.defaultCity = *defaultCity
		a.defaultZone = *defaultZone

		if err := a.Validate(); err != nil {
			panic(fmt.Sprintf("external validation failed: %v", err))
		}
	})

	return a
}
