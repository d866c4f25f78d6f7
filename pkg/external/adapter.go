// Package external fetches the weather and grid carbon data that annotate
// cost results, falling back to fixed sample values.
package external

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/energywise/energywise/pkg/log"
	"github.com/energywise/energywise/pkg/types"
	"golang.org/x/sync/errgroup"
)

// Adapter resolves the weather and carbon context that enriches calculation
// results.
type Adapter struct {
	weather     *Weather
	carbon      *Carbon
	timeout     time.Duration
	defaultCity string
	defaultZone string
}

// NewAdapter returns an Adapter over the given clients. timeout bounds each
// fetch in Resolve.
func NewAdapter(weather *Weather, carbon *Carbon, timeout time.Duration) *Adapter {
	return &Adapter{
		weather:     weather,
		carbon:      carbon,
		timeout:     timeout,
		defaultCity: "London",
		defaultZone: "US-CAL-CISO",
	}
}

// Validate ensures both clients are configured.
func (a *Adapter) Validate() error {
	if a.weather == nil || a.carbon == nil {
		return fmt.Errorf("weather and carbon clients are required")
	}
	if err := a.weather.Validate(); err != nil {
		return err
	}
	return a.carbon.Validate()
}

// Resolve fetches the weather for city and the carbon data for zone
// concurrently. Empty names use the configured defaults. A fetch that fails
// yields nil for its half; Resolve itself never fails.
func (a *Adapter) Resolve(ctx context.Context, city, zone string) (*types.WeatherContext, *types.CarbonContext) {
	var weather *types.WeatherContext
	var carbon *types.CarbonContext

	var g errgroup.Group
	g.Go(func() error {
		weather = a.Weather(ctx, city)
		return nil
	})
	g.Go(func() error {
		carbon = a.Carbon(ctx, zone)
		return nil
	})
	_ = g.Wait()

	return weather, carbon
}

// Weather returns the weather for city, or nil if it could not be fetched.
func (a *Adapter) Weather(ctx context.Context, city string) *types.WeatherContext {
	if city == "" {
		city = a.defaultCity
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	w, err := a.weather.Get(ctx, city)
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "weather unavailable", slog.String("city", city), slog.Any("error", err))
		return nil
	}
	return &w
}

// Carbon returns the carbon data for zone, or nil if it could not be fetched.
func (a *Adapter) Carbon(ctx context.Context, zone string) *types.CarbonContext {
	if zone == "" {
		zone = a.defaultZone
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	c, err := a.carbon.Get(ctx, zone)
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "carbon data unavailable", slog.String("zone", zone), slog.Any("error", err))
		return nil
	}
	return &c
}

func (a *Adapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}
