package advisor

import (
	"fmt"

	"github.com/energywise/energywise/pkg/types"
)

// HourlyOutlook pairs each forecast hour with the plan's rate in that hour.
// Hours inside offPeak use the plan's off-peak rate, all others its peak
// rate. An hour is recommended when it is both off-peak and clean.
func HourlyOutlook(plan types.ElectricityPlan, forecast []types.HourlyIntensity, offPeak types.TimePeriod) ([]types.HourlyOutlook, error) {
	if err := offPeak.Validate(); err != nil {
		return nil, err
	}

	out := make([]types.HourlyOutlook, len(forecast))
	for i, f := range forecast {
		if f.Hour < 0 || f.Hour > 23 {
			return nil, fmt.Errorf("forecast hour must be between 0 and 23, got %d: %w", f.Hour, types.ErrInvalidInput)
		}
		isOffPeak := offPeak.ContainsHour(f.Hour)
		rate := plan.PeakRate
		if isOffPeak {
			rate = plan.OffPeakRate
		}
		out[i] = types.HourlyOutlook{
			Hour:          f.Hour,
			Label:         f.Label,
			DollarsPerKWH: rate,
			OffPeak:       isOffPeak,
			Intensity:     f.Intensity,
			IsClean:       f.IsClean,
			Recommended:   isOffPeak && f.IsClean,
		}
	}
	return out, nil
}
