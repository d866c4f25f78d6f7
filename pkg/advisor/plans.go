// Package advisor ranks the plan catalog against a user's usage and derives
// savings suggestions from their current spend.
package advisor

import (
	"fmt"
	"math"
	"sort"

	"github.com/energywise/energywise/pkg/calc"
	"github.com/energywise/energywise/pkg/types"
)

// FilterAndSortPlans returns the plans matching every set filter, ordered by
// filters.SortBy. With no sort key the catalog order is kept. The input slice
// is not modified.
func FilterAndSortPlans(plans []types.ElectricityPlan, filters types.PlanFilters) ([]types.ElectricityPlan, error) {
	var less func(a, b types.ElectricityPlan) bool
	switch filters.SortBy {
	case types.SortNone:
	case types.SortPrice:
		less = func(a, b types.ElectricityPlan) bool { return a.Rate < b.Rate }
	case types.SortRenewable:
		less = func(a, b types.ElectricityPlan) bool { return a.Renewable > b.Renewable }
	case types.SortContract:
		less = func(a, b types.ElectricityPlan) bool { return a.ContractLength < b.ContractLength }
	default:
		return nil, fmt.Errorf("unknown sort key %q: %w", filters.SortBy, types.ErrInvalidInput)
	}

	for name, bound := range map[string]*float64{"minRenewable": filters.MinRenewable, "maxRate": filters.MaxRate} {
		if bound != nil && (math.IsNaN(*bound) || math.IsInf(*bound, 0)) {
			return nil, fmt.Errorf("%s must be a finite number, got %v: %w", name, *bound, types.ErrInvalidInput)
		}
	}

	out := make([]types.ElectricityPlan, 0, len(plans))
	for _, p := range plans {
		if filters.MinRenewable != nil && p.Renewable < *filters.MinRenewable {
			continue
		}
		if filters.MaxRate != nil && p.Rate > *filters.MaxRate {
			continue
		}
		out = append(out, p)
	}

	if less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i], out[j])
		})
	}
	return out, nil
}

// ComparePlans estimates the monthly bill of every plan for monthlyKWH of
// usage and ranks them cheapest first. Ties keep catalog order.
func ComparePlans(plans []types.ElectricityPlan, monthlyKWH float64) (types.PlanComparison, error) {
	if math.IsNaN(monthlyKWH) || math.IsInf(monthlyKWH, 0) || monthlyKWH < 0 {
		return types.PlanComparison{}, fmt.Errorf("monthly usage must be a non-negative number, got %v: %w", monthlyKWH, types.ErrInvalidInput)
	}
	if len(plans) == 0 {
		return types.PlanComparison{}, fmt.Errorf("no plans to compare: %w", types.ErrUnknownEntity)
	}

	type costed struct {
		plan   types.ElectricityPlan
		energy float64
		total  float64
	}
	costs := make([]costed, len(plans))
	for i, p := range plans {
		energy := monthlyKWH * p.Rate
		costs[i] = costed{plan: p, energy: energy, total: energy + p.MonthlyFee}
	}
	sort.SliceStable(costs, func(i, j int) bool {
		return costs[i].total < costs[j].total
	})

	entries := make([]types.PlanComparisonEntry, len(costs))
	for i, c := range costs {
		entries[i] = types.PlanComparisonEntry{
			ElectricityPlan:      c.plan,
			EstimatedMonthlyCost: calc.Round2(c.total),
			EnergyCost:           calc.Round2(c.energy),
		}
	}

	cheapest := costs[0]
	priciest := costs[len(costs)-1]
	return types.PlanComparison{
		Comparison: entries,
		Insights: types.PlanInsights{
			CheapestPlan:     cheapest.plan.PlanName,
			CheapestProvider: cheapest.plan.Provider,
			MaxYearlySavings: calc.Round2(calc.YearlyCost(priciest.total - cheapest.total)),
			MonthlyKWH:       monthlyKWH,
		},
	}, nil
}

// AverageRate returns the mean standard rate of plans to three decimal
// places, or zero when there are none.
func AverageRate(plans []types.ElectricityPlan) float64 {
	if len(plans) == 0 {
		return 0
	}
	var sum float64
	for _, p := range plans {
		sum += p.Rate
	}
	return calc.Round(sum/float64(len(plans)), 3)
}

// ComparisonChart flattens a comparison into parallel series keyed by
// provider.
func ComparisonChart(entries []types.PlanComparisonEntry) types.ComparisonChart {
	chart := types.ComparisonChart{
		Labels:    make([]string, len(entries)),
		Costs:     make([]float64, len(entries)),
		Renewable: make([]float64, len(entries)),
	}
	for i, e := range entries {
		chart.Labels[i] = e.Provider
		chart.Costs[i] = e.EstimatedMonthlyCost
		chart.Renewable[i] = e.Renewable
	}
	return chart
}

// TopPlanSavings returns the first n entries of a ranked comparison with the
// savings of switching to each from currentMonthlyCost. The first entry is
// marked best.
func TopPlanSavings(comparison types.PlanComparison, currentMonthlyCost float64, n int) []types.PlanSavings {
	if n > len(comparison.Comparison) {
		n = len(comparison.Comparison)
	}
	if n <= 0 {
		return []types.PlanSavings{}
	}
	out := make([]types.PlanSavings, n)
	for i, e := range comparison.Comparison[:n] {
		out[i] = types.PlanSavings{
			PlanComparisonEntry: e,
			Savings:             calc.CalculateSavings(currentMonthlyCost, e.EstimatedMonthlyCost),
			Best:                i == 0,
		}
	}
	return out
}
