package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsageSelection(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		names := []string{"tv", "fan"}
		u, err := NewUsageSelection(names, 0.15, 30)
		require.NoError(t, err)
		assert.Equal(t, []string{"tv", "fan"}, u.Appliances)
		assert.Equal(t, 0.15, u.Rate)
		assert.Equal(t, 30, u.Days)

		// the selection owns its own copy
		names[0] = "dryer"
		assert.Equal(t, "tv", u.Appliances[0])
		assert.True(t, u.Contains("fan"))
		assert.False(t, u.Contains("dryer"))
	})

	t.Run("duplicates removed", func(t *testing.T) {
		u, err := NewUsageSelection([]string{"tv", "fan", "tv", "fan", "dryer"}, 0.15, 30)
		require.NoError(t, err)
		assert.Equal(t, []string{"tv", "fan", "dryer"}, u.Appliances)
	})

	tests := []struct {
		name string
		rate float64
		days int
	}{
		{"zero rate", 0, 30},
		{"negative rate", -0.1, 30},
		{"NaN rate", math.NaN(), 30},
		{"infinite rate", math.Inf(1), 30},
		{"zero days", 0.15, 0},
		{"too many days", 0.15, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUsageSelection([]string{"tv"}, tt.rate, tt.days)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	t.Run("boundaries", func(t *testing.T) {
		_, err := NewUsageSelection(nil, 0.01, 1)
		assert.NoError(t, err)
		_, err = NewUsageSelection(nil, 0.01, 31)
		assert.NoError(t, err)
	})
}
