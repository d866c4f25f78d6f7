package advisor

import (
	"fmt"
	"math"

	"github.com/energywise/energywise/pkg/calc"
	"github.com/energywise/energywise/pkg/types"
)

// LEDMonthlySavings is the flat monthly saving of switching to LED lighting.
const LEDMonthlySavings = 18.75

// BatchLoadsMinHousehold is the smallest household that gets the batch loads
// suggestion.
const BatchLoadsMinHousehold = 3

type heuristic struct {
	title       string
	description string
	// fraction of current cost; ignored when flat is set
	fraction   float64
	flat       float64
	difficulty types.Difficulty
	impact     types.Impact
}

func (h heuristic) savings(currentMonthlyCost float64) float64 {
	if h.flat > 0 {
		return h.flat
	}
	return currentMonthlyCost * h.fraction
}

func renewableDescription(carbon *types.CarbonContext) string {
	d := "Consider switching to a plan with higher renewable energy percentage. "
	if carbon != nil && carbon.IsReal {
		return d + fmt.Sprintf("Current grid: %.0f%% renewable.", carbon.RenewablePercentage)
	}
	return d + "Many green plans are now price-competitive."
}

func baseHeuristics(carbon *types.CarbonContext) []heuristic {
	return []heuristic{
		{
			title:       "Shift to Off-Peak Hours",
			description: "Run high-energy appliances like washing machines, dryers, and dishwashers during off-peak hours (typically 9 PM - 7 AM). Many plans offer rates 30-50% lower during these times.",
			fraction:    0.15,
			difficulty:  types.DifficultyEasy,
			impact:      types.ImpactHigh,
		},
		{
			title:       "Optimize Thermostat Settings",
			description: "Adjust your thermostat by 2-3 degrees (lower in winter, higher in summer) to reduce heating and cooling costs by 10-15% without significantly affecting comfort.",
			fraction:    0.12,
			difficulty:  types.DifficultyEasy,
			impact:      types.ImpactHigh,
		},
		{
			title:       "Switch to Renewable Energy Plan",
			description: renewableDescription(carbon),
			fraction:    0.08,
			difficulty:  types.DifficultyEasy,
			impact:      types.ImpactMedium,
		},
		{
			title:       "Upgrade to LED Lighting",
			description: "Replace incandescent bulbs with LEDs. LEDs use 75% less energy and last 25 times longer, saving an average household $225 per year.",
			flat:        LEDMonthlySavings,
			difficulty:  types.DifficultyEasy,
			impact:      types.ImpactMedium,
		},
		{
			title:       "Eliminate Phantom Power",
			description: "Unplug devices or use smart power strips to eliminate standby power consumption. Phantom power can account for 5-10% of residential energy use.",
			fraction:    0.07,
			difficulty:  types.DifficultyEasy,
			impact:      types.ImpactLow,
		},
		{
			title:       "Optimize Water Heater",
			description: "Lower your water heater temperature to 120°F (49°C) and consider using cold water for laundry. This can reduce water heating costs by 10-20%.",
			fraction:    0.10,
			difficulty:  types.DifficultyEasy,
			impact:      types.ImpactMedium,
		},
	}
}

var batchLoads = heuristic{
	title:       "Batch Your Loads",
	description: "Run full loads in your washing machine and dishwasher to maximize efficiency. This can reduce energy and water usage by up to 20% for larger households.",
	fraction:    0.08,
	difficulty:  types.DifficultyEasy,
	impact:      types.ImpactMedium,
}

// RecommendOptimizations builds the savings suggestions for a household.
// carbon may be nil; when it is real data the renewable suggestion quotes the
// grid's renewable share and it is attached to the result.
//
// The suggestions are independent, so their total is not capped at the
// current spend and can exceed it.
func RecommendOptimizations(currentMonthlyCost, monthlyUsageKWH float64, householdSize int, carbon *types.CarbonContext) (types.Optimizations, error) {
	if math.IsNaN(currentMonthlyCost) || math.IsInf(currentMonthlyCost, 0) || currentMonthlyCost < 0 {
		return types.Optimizations{}, fmt.Errorf("current monthly cost must be a non-negative number, got %v: %w", currentMonthlyCost, types.ErrInvalidInput)
	}
	if math.IsNaN(monthlyUsageKWH) || math.IsInf(monthlyUsageKWH, 0) || monthlyUsageKWH <= 0 {
		return types.Optimizations{}, fmt.Errorf("monthly usage must be greater than 0, got %v: %w", monthlyUsageKWH, types.ErrInvalidInput)
	}
	if householdSize < 1 {
		return types.Optimizations{}, fmt.Errorf("household size must be at least 1, got %d: %w", householdSize, types.ErrInvalidInput)
	}

	hs := baseHeuristics(carbon)
	if householdSize >= BatchLoadsMinHousehold {
		hs = append(hs, batchLoads)
	}

	suggestions := make([]types.Suggestion, len(hs))
	var total float64
	for i, h := range hs {
		s := h.savings(currentMonthlyCost)
		total += s
		suggestions[i] = types.Suggestion{
			Title:            h.title,
			Description:      h.description,
			PotentialSavings: calc.Round2(s),
			Difficulty:       h.difficulty,
			Impact:           h.impact,
		}
	}

	return types.Optimizations{
		Suggestions:                  suggestions,
		TotalPotentialMonthlySavings: calc.Round2(total),
		TotalPotentialYearlySavings:  calc.Round2(calc.YearlyCost(total)),
		CurrentRate:                  calc.Round(currentMonthlyCost/monthlyUsageKWH, 3),
		Carbon:                       carbon,
	}, nil
}
