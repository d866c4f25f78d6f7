package calc

import (
	"fmt"
	"math"

	"github.com/energywise/energywise/pkg/types"
)

const (
	// DefaultOffPeakFraction is the share of usage assumed movable to off-peak
	// hours.
	DefaultOffPeakFraction = 0.4

	// WorthwhilePaybackYears is the longest payback still considered worth it.
	WorthwhilePaybackYears = 5
)

// TimeShiftSavings models moving offPeakFraction of kwh from the peak rate to
// the off-peak rate.
func TimeShiftSavings(kwh, peakRate, offPeakRate, offPeakFraction float64) (types.TimeShiftSavings, error) {
	if !finite(kwh, peakRate, offPeakRate, offPeakFraction) {
		return types.TimeShiftSavings{}, fmt.Errorf("arguments must be finite: %w", types.ErrInvalidInput)
	}
	if offPeakFraction < 0 || offPeakFraction > 1 {
		return types.TimeShiftSavings{}, fmt.Errorf("off-peak fraction must be between 0 and 1, got %v: %w", offPeakFraction, types.ErrInvalidInput)
	}
	if kwh < 0 || peakRate < 0 || offPeakRate < 0 {
		return types.TimeShiftSavings{}, fmt.Errorf("kwh and rates must not be negative: %w", types.ErrInvalidInput)
	}

	shifted := kwh * offPeakFraction
	remaining := kwh - shifted

	current := kwh * peakRate
	optimized := remaining*peakRate + shifted*offPeakRate
	savings := current - optimized

	return types.TimeShiftSavings{
		MonthlySavings:  Round2(savings),
		YearlySavings:   Round2(YearlyCost(savings)),
		ShiftedKWH:      Round2(shifted),
		PercentageSaved: Percentage(savings, current),
	}, nil
}

// PaybackPeriod returns how long upfrontCost takes to recover at
// monthlySavings. Savings of zero or less never pay back, which is reported
// as an infinite period rather than an error.
func PaybackPeriod(upfrontCost, monthlySavings float64) (types.PaybackPeriod, error) {
	if math.IsNaN(upfrontCost) || math.IsNaN(monthlySavings) || math.IsInf(upfrontCost, 0) {
		return types.PaybackPeriod{}, fmt.Errorf("arguments must be numbers: %w", types.ErrInvalidInput)
	}
	if upfrontCost < 0 {
		return types.PaybackPeriod{}, fmt.Errorf("upfront cost must not be negative, got %v: %w", upfrontCost, types.ErrInvalidInput)
	}
	if monthlySavings <= 0 {
		return types.PaybackPeriod{
			Months:     math.Inf(1),
			Years:      math.Inf(1),
			Worthwhile: false,
		}, nil
	}

	months := upfrontCost / monthlySavings
	years := months / MonthsPerYear
	return types.PaybackPeriod{
		Months:     Round(months, 1),
		Years:      Round(years, 1),
		Worthwhile: years <= WorthwhilePaybackYears,
	}, nil
}
