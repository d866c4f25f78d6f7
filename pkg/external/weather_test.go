package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/energywise/energywise/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openWeatherBody = `{
	"name": "Chicago",
	"main": {"temp": 27.4, "feels_like": 29.1, "humidity": 58},
	"weather": [{"main": "Clouds", "description": "scattered clouds"}],
	"sys": {"country": "US"}
}`

func TestWeather(t *testing.T) {
	ctx := context.Background()

	t.Run("parses response", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/weather", r.URL.Path)
			assert.Equal(t, "Chicago", r.URL.Query().Get("q"))
			assert.Equal(t, "key", r.URL.Query().Get("appid"))
			assert.Equal(t, "metric", r.URL.Query().Get("units"))
			_, _ = w.Write([]byte(openWeatherBody))
		}))
		defer ts.Close()

		w := NewWeather(ts.URL, "key", ts.Client())
		got, err := w.Get(ctx, "Chicago")
		require.NoError(t, err)
		assert.Equal(t, types.WeatherContext{
			Temperature: 27.4,
			FeelsLike:   29.1,
			Condition:   "Clouds",
			Description: "scattered clouds",
			Humidity:    58,
			City:        "Chicago",
			Country:     "US",
			IsReal:      true,
		}, got)
	})

	t.Run("no key uses sample without io", func(t *testing.T) {
		w := NewWeather("http://127.0.0.1:0", "", http.DefaultClient)
		got, err := w.Get(ctx, "Chicago")
		require.NoError(t, err)
		assert.Equal(t, SampleWeather(), got)
	})

	t.Run("disabled uses sample", func(t *testing.T) {
		w := NewWeather("http://127.0.0.1:0", "key", http.DefaultClient)
		w.useReal = false
		got, err := w.Get(ctx, "Chicago")
		require.NoError(t, err)
		assert.False(t, got.IsReal)
	})

	t.Run("failure falls back", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid api key", http.StatusUnauthorized)
		}))
		defer ts.Close()

		w := NewWeather(ts.URL, "key", ts.Client())
		got, err := w.Get(ctx, "Chicago")
		require.NoError(t, err)
		assert.Equal(t, SampleWeather(), got)

		w.fallback = false
		_, err = w.Get(ctx, "Chicago")
		assert.ErrorContains(t, err, "401")
	})

	t.Run("empty conditions", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"name": "Nowhere", "weather": []}`))
		}))
		defer ts.Close()

		w := NewWeather(ts.URL, "key", ts.Client())
		w.fallback = false
		_, err := w.Get(ctx, "Nowhere")
		assert.ErrorContains(t, err, "no conditions")
	})

	t.Run("caching", func(t *testing.T) {
		var requests atomic.Int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			_, _ = w.Write([]byte(openWeatherBody))
		}))
		defer ts.Close()

		w := NewWeather(ts.URL, "key", ts.Client())
		_, err := w.Get(ctx, "Chicago")
		require.NoError(t, err)
		_, err = w.Get(ctx, " chicago ")
		require.NoError(t, err)
		assert.Equal(t, int32(1), requests.Load(), "expected cached response")

		_, err = w.Get(ctx, "Boston")
		require.NoError(t, err)
		assert.Equal(t, int32(2), requests.Load(), "cache is per city")

		w.cacheTTL = time.Nanosecond
		time.Sleep(time.Millisecond)
		_, err = w.Get(ctx, "Chicago")
		require.NoError(t, err)
		assert.Equal(t, int32(3), requests.Load(), "expired entry should refetch")
	})

	t.Run("validate", func(t *testing.T) {
		assert.Error(t, NewWeather("", "", nil).Validate())
		assert.NoError(t, NewWeather("https://api.openweathermap.org/data/2.5", "", nil).Validate())
	})
}
