package external

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/energywise/energywise/pkg/common"
	"github.com/energywise/energywise/pkg/log"
	"github.com/energywise/energywise/pkg/types"
)

// Weather fetches current conditions from the OpenWeatherMap API.
type Weather struct {
	apiURL   string
	apiKey   string
	useReal  bool
	fallback bool
	cacheTTL time.Duration
	client   *http.Client

	mu    sync.Mutex
	cache map[string]cachedWeather
}

type cachedWeather struct {
	fetched time.Time
	weather types.WeatherContext
}

// NewWeather returns a Weather client. Without an API key it always returns
// the sample weather.
func NewWeather(apiURL, apiKey string, client *http.Client) *Weather {
	return &Weather{
		apiURL:   apiURL,
		apiKey:   apiKey,
		useReal:  true,
		fallback: true,
		cacheTTL: DefaultCacheTTL,
		client:   client,
		cache:    make(map[string]cachedWeather),
	}
}

// Validate ensures the configuration is valid.
func (w *Weather) Validate() error {
	if w.apiURL == "" {
		return fmt.Errorf("openweather-api-url is required")
	}
	if _, err := url.Parse(w.apiURL); err != nil {
		return fmt.Errorf("failed to parse openweather url (%s): %w", w.apiURL, err)
	}
	return nil
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// Get returns the current weather in city. Real results are cached per city.
// When the request fails the sample weather is returned if fallback is
// enabled.
func (w *Weather) Get(ctx context.Context, city string) (types.WeatherContext, error) {
	if w.apiKey == "" || !w.useReal {
		return SampleWeather(), nil
	}

	key := strings.ToLower(strings.TrimSpace(city))
	w.mu.Lock()
	if c, ok := w.cache[key]; ok && time.Since(c.fetched) < w.cacheTTL {
		w.mu.Unlock()
		return c.weather, nil
	}
	w.mu.Unlock()

	weather, err := w.fetch(ctx, city)
	if err != nil {
		if w.fallback {
			log.Ctx(ctx).WarnContext(ctx, "falling back to sample weather", slog.String("city", city), slog.Any("error", err))
			return SampleWeather(), nil
		}
		return types.WeatherContext{}, err
	}

	w.mu.Lock()
	w.cache[key] = cachedWeather{fetched: time.Now(), weather: weather}
	w.mu.Unlock()

	return weather, nil
}

func (w *Weather) fetch(ctx context.Context, city string) (types.WeatherContext, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", w.apiKey)
	params.Set("units", "metric")
	u := strings.TrimRight(w.apiURL, "/") + "/weather?" + params.Encode()

	log.Ctx(ctx).DebugContext(ctx, "fetching weather", slog.String("city", city))

	var data openWeatherResponse
	if err := common.GetJSON(ctx, w.client, u, nil, &data); err != nil {
		return types.WeatherContext{}, fmt.Errorf("weather api error: %w", err)
	}
	if len(data.Weather) == 0 {
		return types.WeatherContext{}, fmt.Errorf("weather api returned no conditions for %s", city)
	}

	return types.WeatherContext{
		Temperature: data.Main.Temp,
		FeelsLike:   data.Main.FeelsLike,
		Condition:   data.Weather[0].Main,
		Description: data.Weather[0].Description,
		Humidity:    data.Main.Humidity,
		City:        data.Name,
		Country:     data.Sys.Country,
		IsReal:      true,
	}, nil
}
