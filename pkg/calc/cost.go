// Package calc turns appliance wattage, usage hours and rates into cost,
// carbon, savings, payback and efficiency figures.
//
// Every function is pure. Intermediate values are never rounded; rounding is
// applied only where a result struct is returned.
package calc

import (
	"fmt"
	"sort"

	"github.com/energywise/energywise/pkg/types"
)

const (
	// DefaultDaysPerMonth is the billing period used when none is given.
	DefaultDaysPerMonth = 30

	// MonthsPerYear scales monthly figures to yearly ones.
	MonthsPerYear = 12
)

// DailyCost returns the cost of running an appliance of the given wattage for
// hours per day at rate dollars per kWh.
func DailyCost(watts, hours, rate float64) (float64, error) {
	if !finite(watts, hours, rate) {
		return 0, fmt.Errorf("watts, hours and rate must be finite: %w", types.ErrInvalidInput)
	}
	if watts < 0 || hours < 0 || rate < 0 {
		return 0, fmt.Errorf("watts (%v), hours (%v) and rate (%v) must not be negative: %w", watts, hours, rate, types.ErrInvalidInput)
	}
	return (watts * hours / 1000) * rate, nil
}

// MonthlyCost scales a daily cost to a billing period of days.
func MonthlyCost(daily float64, days int) float64 {
	return daily * float64(days)
}

// YearlyCost scales a monthly cost to a year.
func YearlyCost(monthly float64) float64 {
	return monthly * MonthsPerYear
}

// ComputeBreakdown computes the per-appliance and total energy use and cost of
// a selection over its billing period. Selected names missing from appliances
// are skipped and a repeated name is counted once. If nothing resolves, ErrNoApplianceSelected is returned.
//
// Entries are sorted by cost, highest first. Ties keep selection order.
func ComputeBreakdown(selection types.UsageSelection, appliances map[string]types.ApplianceProfile) (types.CostResult, error) {
	type entry struct {
		profile types.ApplianceProfile
		name    string
		kwh     float64
		cost    float64
	}

	var entries []entry
	var totalKWH, totalCost float64
	seen := make(map[string]bool, len(selection.Appliances))
	for _, name := range selection.Appliances {
		a, ok := appliances[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		if a.Watts < 0 || a.HoursPerDay < 0 || !finite(a.Watts, a.HoursPerDay) {
			return types.CostResult{}, fmt.Errorf("appliance %s has invalid profile: %w", name, types.ErrInvalidInput)
		}
		kwh := a.Watts * a.HoursPerDay / 1000 * float64(selection.Days)
		cost := kwh * selection.Rate
		totalKWH += kwh
		totalCost += cost
		entries = append(entries, entry{profile: a, name: name, kwh: kwh, cost: cost})
	}
	if len(entries) == 0 {
		return types.CostResult{}, fmt.Errorf("none of %d selected appliances are known: %w", len(selection.Appliances), types.ErrNoApplianceSelected)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].cost > entries[j].cost
	})

	breakdown := make([]types.CostBreakdownEntry, len(entries))
	for i, e := range entries {
		breakdown[i] = types.CostBreakdownEntry{
			Name:        e.name,
			DisplayName: FormatApplianceName(e.name),
			Watts:       e.profile.Watts,
			HoursPerDay: e.profile.HoursPerDay,
			KWH:         Round2(e.kwh),
			Cost:        Round2(e.cost),
		}
	}

	return types.CostResult{
		TotalKWH:  Round2(totalKWH),
		TotalCost: Round2(totalCost),
		Breakdown: breakdown,
		Rate:      selection.Rate,
		Days:      selection.Days,
	}, nil
}

// PlanCost returns the estimated monthly bill on a plan for monthlyKWH of
// usage, including the fixed monthly fee.
func PlanCost(plan types.ElectricityPlan, monthlyKWH float64) float64 {
	return Round2(monthlyKWH*plan.Rate + plan.MonthlyFee)
}

// CalculateSavings compares a current monthly cost against a new one.
// Negative values mean the new cost is higher.
func CalculateSavings(current, next float64) types.Savings {
	monthly := current - next
	return types.Savings{
		Monthly:    Round2(monthly),
		Yearly:     Round2(YearlyCost(monthly)),
		Percentage: Percentage(monthly, current),
	}
}
