package types

import (
	"fmt"
	"math"
)

// ApplianceProfile is an immutable entry in the appliance catalog.
type ApplianceProfile struct {
	Name        string  `json:"name" yaml:"name"`
	Watts       float64 `json:"watts" yaml:"watts"`
	HoursPerDay float64 `json:"hoursPerDay" yaml:"hoursPerDay"`
}

const (
	MinBillingDays = 1
	MaxBillingDays = 31
)

// UsageSelection is the validated input to a cost breakdown. Construct it with
// NewUsageSelection.
type UsageSelection struct {
	Appliances []string `json:"appliances"`
	Rate       float64  `json:"rate"`
	Days       int      `json:"days"`
}

// NewUsageSelection validates the rate and billing period and returns a
// selection. Repeated names are kept once. Appliance names are not resolved
// here; unknown names are skipped when the breakdown is computed.
func NewUsageSelection(appliances []string, rate float64, days int) (UsageSelection, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return UsageSelection{}, fmt.Errorf("rate must be greater than 0, got %v: %w", rate, ErrInvalidInput)
	}
	if days < MinBillingDays || days > MaxBillingDays {
		return UsageSelection{}, fmt.Errorf("days must be between %d and %d, got %d: %w", MinBillingDays, MaxBillingDays, days, ErrInvalidInput)
	}
	// the selection is a set; the first occurrence keeps its place
	names := make([]string, 0, len(appliances))
	seen := make(map[string]struct{}, len(appliances))
	for _, name := range appliances {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return UsageSelection{
		Appliances: names,
		Rate:       rate,
		Days:       days,
	}, nil
}

// Contains reports whether the named appliance was selected.
func (u UsageSelection) Contains(name string) bool {
	for _, a := range u.Appliances {
		if a == name {
			return true
		}
	}
	return false
}

// CostBreakdownEntry is the cost of a single appliance over the billing
// period.
type CostBreakdownEntry struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Watts       float64 `json:"watts"`
	HoursPerDay float64 `json:"hoursPerDay"`
	KWH         float64 `json:"kwh"`
	Cost        float64 `json:"cost"`
}

// CostResult is the aggregate cost of a usage selection.
type CostResult struct {
	TotalKWH  float64              `json:"totalKWH"`
	TotalCost float64              `json:"totalCost"`
	Breakdown []CostBreakdownEntry `json:"breakdown"`
	Rate      float64              `json:"rate"`
	Days      int                  `json:"days"`

	// Weather and Carbon are attached by the caller when the external
	// collaborators returned data. Either may be nil.
	Weather *WeatherInsight `json:"weatherInsights"`
	Carbon  *CarbonContext  `json:"carbonData"`
}
