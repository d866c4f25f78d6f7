package calc

import (
	"fmt"
	"math"

	"github.com/energywise/energywise/pkg/types"
)

const (
	// DefaultCarbonIntensity is the grams of CO2 per kWh used when no real
	// grid data is available, roughly the US average.
	DefaultCarbonIntensity = 400.0

	// TreeAbsorptionKGPerYear is the CO2 one tree absorbs in a year.
	TreeAbsorptionKGPerYear = 20.0
)

// CarbonFootprint returns the CO2 emitted by kwh of electricity at intensity
// grams per kWh. An intensity of zero or less selects DefaultCarbonIntensity.
func CarbonFootprint(kwh, intensity float64) (types.CarbonFootprint, error) {
	if !finite(kwh) || kwh < 0 {
		return types.CarbonFootprint{}, fmt.Errorf("kwh must be a non-negative number, got %v: %w", kwh, types.ErrInvalidInput)
	}
	if !finite(intensity) || intensity <= 0 {
		intensity = DefaultCarbonIntensity
	}

	grams := kwh * intensity
	kg := grams / 1000
	tonnes := kg / 1000

	return types.CarbonFootprint{
		Grams:  Round2(grams),
		KG:     Round2(kg),
		Tonnes: Round(tonnes, 3),
		// partial trees do not exist
		TreesNeeded: int(math.Ceil(kg / TreeAbsorptionKGPerYear)),
		Intensity:   intensity,
	}, nil
}

// IntensityFrom returns the intensity of carbon, or zero when it is nil so
// that CarbonFootprint falls back to its default.
func IntensityFrom(carbon *types.CarbonContext) float64 {
	if carbon == nil {
		return 0
	}
	return carbon.CarbonIntensity
}
