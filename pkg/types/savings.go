package types

import (
	"encoding/json"
	"math"
)

// Savings compares a current monthly cost against a new one.
type Savings struct {
	Monthly    float64 `json:"monthly"`
	Yearly     float64 `json:"yearly"`
	Percentage float64 `json:"percentage"`
}

// TimeShiftSavings is the effect of moving part of the usage to off-peak
// hours.
type TimeShiftSavings struct {
	MonthlySavings  float64 `json:"monthlySavings"`
	YearlySavings   float64 `json:"yearlySavings"`
	ShiftedKWH      float64 `json:"shiftedKWH"`
	PercentageSaved float64 `json:"percentageSaved"`
}

// PaybackPeriod is how long an upfront cost takes to recover. Months and Years
// are +Inf when the upgrade never pays back.
type PaybackPeriod struct {
	Months     float64
	Years      float64
	Worthwhile bool
}

// NeverPaysBack reports whether the period is infinite.
func (p PaybackPeriod) NeverPaysBack() bool {
	return math.IsInf(p.Months, 1)
}

// MarshalJSON encodes an infinite period as null months and years since JSON
// has no representation for infinity.
func (p PaybackPeriod) MarshalJSON() ([]byte, error) {
	out := struct {
		Months        *float64 `json:"months"`
		Years         *float64 `json:"years"`
		Worthwhile    bool     `json:"worthwhile"`
		NeverPaysBack bool     `json:"neverPaysBack"`
	}{
		Worthwhile:    p.Worthwhile,
		NeverPaysBack: p.NeverPaysBack(),
	}
	if !out.NeverPaysBack {
		out.Months = &p.Months
		out.Years = &p.Years
	}
	return json.Marshal(out)
}

// EfficiencyRating compares actual usage against a household-size baseline.
type EfficiencyRating struct {
	Rating string  `json:"rating"`
	Score  float64 `json:"score"`
	// Message is a short summary string for display.
	Message         string  `json:"message"`
	ComparisonUsage float64 `json:"comparisonUsage"`
}

const (
	RatingExcellent    = "Excellent"
	RatingGood         = "Good"
	RatingAverage      = "Average"
	RatingBelowAverage = "Below Average"
	RatingPoor         = "Poor"
)

// Difficulty is how hard a suggestion is to act on.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
)

// Impact is the relative size of a suggestion's effect.
type Impact string

const (
	ImpactLow    Impact = "Low"
	ImpactMedium Impact = "Medium"
	ImpactHigh   Impact = "High"
)

// Suggestion is a single savings recommendation.
type Suggestion struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	PotentialSavings float64    `json:"potentialSavings"`
	Difficulty       Difficulty `json:"difficulty"`
	Impact           Impact     `json:"impact"`
}

// Optimizations is the full recommendation set for a household.
//
// The totals are plain sums over independent suggestions and are not capped
// at the current monthly cost, so they can exceed it.
type Optimizations struct {
	Suggestions                  []Suggestion   `json:"suggestions"`
	TotalPotentialMonthlySavings float64        `json:"totalPotentialMonthlySavings"`
	TotalPotentialYearlySavings  float64        `json:"totalPotentialYearlySavings"`
	CurrentRate                  float64        `json:"currentRate"`
	Carbon                       *CarbonContext `json:"carbonData"`
}
