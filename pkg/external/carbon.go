package external

import (
	"context"
	"errors"
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

// ErrNoCarbonSource is returned when no carbon provider answered and the
// sample fallback is disabled.
var ErrNoCarbonSource = errors.New("no carbon intensity API available")

// Carbon fetches the current grid carbon intensity. Electricity Maps is tried
// first, then CO2 Signal.
type Carbon struct {
	mapsURL   string
	mapsKey   string
	signalURL string
	signalKey string
	useReal   bool
	fallback  bool
	cacheTTL  time.Duration
	client    *http.Client

	mu    sync.Mutex
	cache map[string]cachedCarbon
}

type cachedCarbon struct {
	fetched time.Time
	carbon  types.CarbonContext
}

// NewCarbon returns a Carbon client. A provider without a key is skipped.
func NewCarbon(mapsURL, mapsKey, signalURL, signalKey string, client *http.Client) *Carbon {
	return &Carbon{
		mapsURL:   mapsURL,
		mapsKey:   mapsKey,
		signalURL: signalURL,
		signalKey: signalKey,
		useReal:   true,
		fallback:  true,
		cacheTTL:  DefaultCacheTTL,
		client:    client,
		cache:     make(map[string]cachedCarbon),
	}
}

// Validate ensures the configuration is valid.
func (c *Carbon) Validate() error {
	if c.mapsKey != "" {
		if _, err := url.Parse(c.mapsURL); err != nil || c.mapsURL == "" {
			return fmt.Errorf("invalid electricity maps url (%s)", c.mapsURL)
		}
	}
	if c.signalKey != "" {
		if _, err := url.Parse(c.signalURL); err != nil || c.signalURL == "" {
			return fmt.Errorf("invalid co2 signal url (%s)", c.signalURL)
		}
	}
	return nil
}

// Get returns the carbon intensity of an Electricity Maps zone such as
// "US-CAL-CISO".
func (c *Carbon) Get(ctx context.Context, zone string) (types.CarbonContext, error) {
	zone = strings.ToUpper(strings.TrimSpace(zone))
	if !c.useReal || (c.mapsKey == "" && c.signalKey == "") {
		return SampleCarbon(), nil
	}

	c.mu.Lock()
	if cc, ok := c.cache[zone]; ok && time.Since(cc.fetched) < c.cacheTTL {
		c.mu.Unlock()
		return cc.carbon, nil
	}
	c.mu.Unlock()

	carbon, err := c.fetch(ctx, zone)
	if err != nil {
		if c.fallback {
			log.Ctx(ctx).WarnContext(ctx, "falling back to sample carbon data", slog.String("zone", zone), slog.Any("error", err))
			return SampleCarbon(), nil
		}
		return types.CarbonContext{}, err
	}

	c.mu.Lock()
	c.cache[zone] = cachedCarbon{fetched: time.Now(), carbon: carbon}
	c.mu.Unlock()

	return carbon, nil
}

func (c *Carbon) fetch(ctx context.Context, zone string) (types.CarbonContext, error) {
	var errs []error
	if c.mapsKey != "" {
		carbon, err := c.fetchElectricityMaps(ctx, zone)
		if err == nil {
			return carbon, nil
		}
		log.Ctx(ctx).DebugContext(ctx, "electricity maps failed", slog.String("zone", zone), slog.Any("error", err))
		errs = append(errs, err)
	}
	if c.signalKey != "" {
		carbon, err := c.fetchCO2Signal(ctx, zone)
		if err == nil {
			return carbon, nil
		}
		errs = append(errs, err)
	}
	return types.CarbonContext{}, fmt.Errorf("%w: %w", ErrNoCarbonSource, errors.Join(errs...))
}

type electricityMapsResponse struct {
	CarbonIntensity      *float64 `json:"carbonIntensity"`
	FossilFuelPercentage *float64 `json:"fossilFuelPercentage"`
	RenewablePercentage  *float64 `json:"renewablePercentage"`
}

func (c *Carbon) fetchElectricityMaps(ctx context.Context, zone string) (types.CarbonContext, error) {
	u := strings.TrimRight(c.mapsURL, "/") + "/carbon-intensity/latest?" + url.Values{"zone": {zone}}.Encode()
	h := http.Header{}
	h.Set("auth-token", c.mapsKey)

	var data electricityMapsResponse
	if err := common.GetJSON(ctx, c.client, u, h, &data); err != nil {
		return types.CarbonContext{}, fmt.Errorf("electricity maps api error: %w", err)
	}
	if data.CarbonIntensity == nil {
		return types.CarbonContext{}, fmt.Errorf("electricity maps returned no carbon intensity for %s", zone)
	}

	return types.CarbonContext{
		CarbonIntensity:      *data.CarbonIntensity,
		FossilFuelPercentage: orDefault(data.FossilFuelPercentage, 50),
		RenewablePercentage:  orDefault(data.RenewablePercentage, 50),
		Zone:                 zone,
		Source:               "Electricity Maps",
		IsReal:               true,
	}, nil
}

type co2SignalResponse struct {
	Data struct {
		CarbonIntensity      *float64 `json:"carbonIntensity"`
		FossilFuelPercentage *float64 `json:"fossilFuelPercentage"`
	} `json:"data"`
}

func (c *Carbon) fetchCO2Signal(ctx context.Context, zone string) (types.CarbonContext, error) {
	country, _, _ := strings.Cut(zone, "-")
	u := strings.TrimRight(c.signalURL, "/") + "/latest?" + url.Values{"countryCode": {country}}.Encode()
	h := http.Header{}
	h.Set("auth-token", c.signalKey)

	var data co2SignalResponse
	if err := common.GetJSON(ctx, c.client, u, h, &data); err != nil {
		return types.CarbonContext{}, fmt.Errorf("co2 signal api error: %w", err)
	}
	if data.Data.CarbonIntensity == nil {
		return types.CarbonContext{}, fmt.Errorf("co2 signal returned no carbon intensity for %s", country)
	}

	fossil := orDefault(data.Data.FossilFuelPercentage, 0)
	return types.CarbonContext{
		CarbonIntensity:      *data.Data.CarbonIntensity,
		FossilFuelPercentage: fossil,
		RenewablePercentage:  100 - fossil,
		Zone:                 country,
		Source:               "CO2 Signal",
		IsReal:               true,
	}, nil
}

// orDefault treats a missing or zero value as def.
func orDefault(v *float64, def float64) float64 {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}
