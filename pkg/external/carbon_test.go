package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/energywise/energywise/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carbonServer(t *testing.T, maps, signal http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/maps/carbon-intensity/latest", maps)
	mux.HandleFunc("/signal/latest", signal)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func failing(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "unavailable", http.StatusServiceUnavailable)
}

func TestCarbon(t *testing.T) {
	ctx := context.Background()

	t.Run("electricity maps", func(t *testing.T) {
		ts := carbonServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "US-CAL-CISO", r.URL.Query().Get("zone"))
			assert.Equal(t, "maps-key", r.Header.Get("auth-token"))
			_, _ = w.Write([]byte(`{"carbonIntensity": 212, "fossilFuelPercentage": 41.5, "renewablePercentage": 52.3}`))
		}, func(w http.ResponseWriter, r *http.Request) {
			t.Error("co2 signal should not be called")
		})

		c := NewCarbon(ts.URL+"/maps", "maps-key", ts.URL+"/signal", "signal-key", ts.Client())
		got, err := c.Get(ctx, "US-CAL-CISO")
		require.NoError(t, err)
		assert.Equal(t, types.CarbonContext{
			CarbonIntensity:      212,
			FossilFuelPercentage: 41.5,
			RenewablePercentage:  52.3,
			Zone:                 "US-CAL-CISO",
			Source:               "Electricity Maps",
			IsReal:               true,
		}, got)
	})

	t.Run("electricity maps missing percentages", func(t *testing.T) {
		ts := carbonServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"carbonIntensity": 300}`))
		}, failing)

		c := NewCarbon(ts.URL+"/maps", "maps-key", "", "", ts.Client())
		got, err := c.Get(ctx, "DE")
		require.NoError(t, err)
		assert.Equal(t, 50.0, got.FossilFuelPercentage)
		assert.Equal(t, 50.0, got.RenewablePercentage)
	})

	t.Run("falls through to co2 signal", func(t *testing.T) {
		ts := carbonServer(t, failing, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "US", r.URL.Query().Get("countryCode"))
			assert.Equal(t, "signal-key", r.Header.Get("auth-token"))
			_, _ = w.Write([]byte(`{"data": {"carbonIntensity": 380, "fossilFuelPercentage": 62}}`))
		})

		c := NewCarbon(ts.URL+"/maps", "maps-key", ts.URL+"/signal", "signal-key", ts.Client())
		got, err := c.Get(ctx, "US-CAL-CISO")
		require.NoError(t, err)
		assert.Equal(t, types.CarbonContext{
			CarbonIntensity:      380,
			FossilFuelPercentage: 62,
			RenewablePercentage:  38,
			Zone:                 "US",
			Source:               "CO2 Signal",
			IsReal:               true,
		}, got)
	})

	t.Run("all providers fail", func(t *testing.T) {
		ts := carbonServer(t, failing, failing)

		c := NewCarbon(ts.URL+"/maps", "maps-key", ts.URL+"/signal", "signal-key", ts.Client())
		got, err := c.Get(ctx, "GB")
		require.NoError(t, err)
		assert.Equal(t, SampleCarbon(), got)

		c.fallback = false
		_, err = c.Get(ctx, "GB")
		assert.ErrorIs(t, err, ErrNoCarbonSource)
		assert.ErrorContains(t, err, "503")
	})

	t.Run("no keys uses sample", func(t *testing.T) {
		c := NewCarbon("", "", "", "", http.DefaultClient)
		got, err := c.Get(ctx, "GB")
		require.NoError(t, err)
		assert.Equal(t, SampleCarbon(), got)
	})

	t.Run("caching", func(t *testing.T) {
		var requests atomic.Int32
		ts := carbonServer(t, func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			_, _ = w.Write([]byte(`{"carbonIntensity": 212}`))
		}, failing)

		c := NewCarbon(ts.URL+"/maps", "maps-key", "", "", ts.Client())
		for i := 0; i < 3; i++ {
			_, err := c.Get(ctx, "GB")
			require.NoError(t, err)
		}
		assert.Equal(t, int32(1), requests.Load(), "expected cached response")
	})

	t.Run("zone is normalized", func(t *testing.T) {
		var requests atomic.Int32
		ts := carbonServer(t, func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			assert.Equal(t, "US-CAL-CISO", r.URL.Query().Get("zone"))
			_, _ = w.Write([]byte(`{"carbonIntensity": 212}`))
		}, failing)

		c := NewCarbon(ts.URL+"/maps", "maps-key", "", "", ts.Client())
		for _, zone := range []string{"US-CAL-CISO", " us-cal-ciso", "Us-Cal-Ciso "} {
			got, err := c.Get(ctx, zone)
			require.NoError(t, err)
			assert.Equal(t, "US-CAL-CISO", got.Zone)
		}
		assert.Equal(t, int32(1), requests.Load(), "expected one cache entry for every spelling")
	})

	t.Run("sample results are not cached", func(t *testing.T) {
		var requests atomic.Int32
		ts := carbonServer(t, func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			failing(w, r)
		}, failing)

		c := NewCarbon(ts.URL+"/maps", "maps-key", "", "", ts.Client())
		_, _ = c.Get(ctx, "GB")
		_, _ = c.Get(ctx, "GB")
		assert.Equal(t, int32(2), requests.Load())
	})

	t.Run("validate", func(t *testing.T) {
		assert.Error(t, NewCarbon("", "key", "", "", nil).Validate())
		assert.Error(t, NewCarbon("", "", "", "key", nil).Validate())
		assert.NoError(t, NewCarbon("", "", "", "", nil).Validate())
	})
}
