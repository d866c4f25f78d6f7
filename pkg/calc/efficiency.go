package calc

import (
	"fmt"

	"github.com/energywise/energywise/pkg/types"
)

// BaselineMonthlyKWH is the average US household's monthly usage.
const BaselineMonthlyKWH = 877.0

type ratingBand struct {
	min     float64
	rating  string
	message string
}

// bands are ordered from best to worst; the first whose min the score meets
// wins.
var bands = []ratingBand{
	{120, types.RatingExcellent, "Your energy usage is significantly below average!"},
	{100, types.RatingGood, "Your energy usage is better than average."},
	{80, types.RatingAverage, "Your energy usage is about average."},
	{60, types.RatingBelowAverage, "There's room for improvement in your energy usage."},
}

// HouseholdBaseline returns the expected monthly kWh for a household of the
// given size.
func HouseholdBaseline(householdSize int) float64 {
	return BaselineMonthlyKWH * (0.5 + float64(householdSize)*0.25)
}

// EfficiencyRating scores actual monthly usage against the baseline for the
// household size. A score of 100 means usage equals the baseline; higher is
// better.
func EfficiencyRating(actualMonthlyKWH float64, householdSize int) (types.EfficiencyRating, error) {
	if householdSize < 1 {
		return types.EfficiencyRating{}, fmt.Errorf("household size must be at least 1, got %d: %w", householdSize, types.ErrInvalidInput)
	}
	if !finite(actualMonthlyKWH) || actualMonthlyKWH <= 0 {
		return types.EfficiencyRating{}, fmt.Errorf("monthly usage must be greater than 0, got %v: %w", actualMonthlyKWH, types.ErrInvalidInput)
	}

	baseline := HouseholdBaseline(householdSize)
	score := baseline / actualMonthlyKWH * 100

	rating := types.RatingPoor
	message := "Significant energy savings are possible with optimization."
	for _, b := range bands {
		if score >= b.min {
			rating = b.rating
			message = b.message
			break
		}
	}

	return types.EfficiencyRating{
		Rating:          rating,
		Score:           Round(score, 1),
		Message:         message,
		ComparisonUsage: Round2(baseline),
	}, nil
}
