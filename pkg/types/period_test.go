package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimePeriodContainsHour(t *testing.T) {
	t.Run("same day range", func(t *testing.T) {
		p := TimePeriod{
			HourStart: 9,
			HourEnd:   17,
		}
		// at start
		assert.True(t, p.ContainsHour(9))
		assert.True(t, p.ContainsHour(16))
		// end is exclusive
		assert.False(t, p.ContainsHour(17))
		assert.False(t, p.ContainsHour(8))
	})

	t.Run("wraps midnight", func(t *testing.T) {
		p := DefaultOffPeakPeriod
		assert.True(t, p.ContainsHour(21))
		assert.True(t, p.ContainsHour(23))
		assert.True(t, p.ContainsHour(0))
		assert.True(t, p.ContainsHour(6))
		assert.False(t, p.ContainsHour(7))
		assert.False(t, p.ContainsHour(12))
		assert.False(t, p.ContainsHour(20))
	})

	t.Run("full day", func(t *testing.T) {
		p := TimePeriod{HourStart: 0, HourEnd: 24}
		for h := 0; h < 24; h++ {
			assert.True(t, p.ContainsHour(h), "hour %d", h)
		}
	})

	t.Run("empty", func(t *testing.T) {
		p := TimePeriod{HourStart: 5, HourEnd: 5}
		assert.False(t, p.ContainsHour(5))
	})
}

func TestTimePeriodValidate(t *testing.T) {
	assert.NoError(t, DefaultOffPeakPeriod.Validate())
	assert.ErrorIs(t, TimePeriod{HourStart: -1, HourEnd: 5}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, TimePeriod{HourStart: 24, HourEnd: 5}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, TimePeriod{HourStart: 1, HourEnd: 25}.Validate(), ErrInvalidInput)
}
