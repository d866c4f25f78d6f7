package advisor

import (
	"testing"

	"github.com/energywise/energywise/pkg/catalog"
	"github.com/energywise/energywise/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyOutlook(t *testing.T) {
	plan := catalog.DefaultPlans()[0]
	forecast := []types.HourlyIntensity{
		{Hour: 0, Intensity: 250, Label: "12 AM", IsClean: true},
		{Hour: 6, Intensity: 400, Label: "6 AM", IsClean: false},
		{Hour: 7, Intensity: 300, Label: "7 AM", IsClean: true},
		{Hour: 12, Intensity: 550, Label: "12 PM", IsClean: false},
		{Hour: 21, Intensity: 300, Label: "9 PM", IsClean: true},
	}

	out, err := HourlyOutlook(plan, forecast, types.DefaultOffPeakPeriod)
	require.NoError(t, err)
	require.Len(t, out, len(forecast))

	assert.Equal(t, types.HourlyOutlook{Hour: 0, Label: "12 AM", DollarsPerKWH: 0.08, OffPeak: true, Intensity: 250, IsClean: true, Recommended: true}, out[0])
	assert.Equal(t, types.HourlyOutlook{Hour: 6, Label: "6 AM", DollarsPerKWH: 0.08, OffPeak: true, Intensity: 400}, out[1])
	assert.Equal(t, types.HourlyOutlook{Hour: 7, Label: "7 AM", DollarsPerKWH: 0.18, Intensity: 300, IsClean: true}, out[2])
	assert.False(t, out[3].OffPeak)
	assert.Equal(t, 0.18, out[3].DollarsPerKWH)
	assert.True(t, out[4].Recommended)

	t.Run("empty forecast", func(t *testing.T) {
		out, err := HourlyOutlook(plan, nil, types.DefaultOffPeakPeriod)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := HourlyOutlook(plan, forecast, types.TimePeriod{HourStart: 25, HourEnd: 3})
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("invalid hour", func(t *testing.T) {
		_, err := HourlyOutlook(plan, []types.HourlyIntensity{{Hour: 24}}, types.DefaultOffPeakPeriod)
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})
}
