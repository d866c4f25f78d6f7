package types

import "fmt"

// TimePeriod is a daily window of hours. HourStart is inclusive and HourEnd is
// exclusive. A window whose start is after its end wraps past midnight, so
// 21-7 covers 21:00 through 06:59.
type TimePeriod struct {
	HourStart   int    `json:"hourStart"`
	HourEnd     int    `json:"hourEnd"`
	Description string `json:"description"`
}

// DefaultOffPeakPeriod is the typical off-peak window of 9 PM to 7 AM.
var DefaultOffPeakPeriod = TimePeriod{
	HourStart:   21,
	HourEnd:     7,
	Description: "Off-Peak",
}

// Validate checks the hours are within a day.
func (p TimePeriod) Validate() error {
	if p.HourStart < 0 || p.HourStart > 23 {
		return fmt.Errorf("hourStart must be between 0 and 23, got %d: %w", p.HourStart, ErrInvalidInput)
	}
	if p.HourEnd < 0 || p.HourEnd > 24 {
		return fmt.Errorf("hourEnd must be between 0 and 24, got %d: %w", p.HourEnd, ErrInvalidInput)
	}
	return nil
}

// ContainsHour checks if an hour of the day (0-23) is within the period.
func (p TimePeriod) ContainsHour(h int) bool {
	if p.HourStart == p.HourEnd {
		return false
	}
	if p.HourStart < p.HourEnd {
		return h >= p.HourStart && h < p.HourEnd
	}
	// wraps midnight
	return h >= p.HourStart || h < p.HourEnd
}
