package calc

import (
	"math"
	"testing"

	"github.com/energywise/energywise/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarbonFootprint(t *testing.T) {
	t.Run("reference values", func(t *testing.T) {
		fp, err := CarbonFootprint(1000, 400)
		require.NoError(t, err)
		assert.Equal(t, types.CarbonFootprint{
			Grams:       400000,
			KG:          400,
			Tonnes:      0.4,
			TreesNeeded: 20,
			Intensity:   400,
		}, fp)
	})

	t.Run("default intensity", func(t *testing.T) {
		fp, err := CarbonFootprint(1000, 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultCarbonIntensity, fp.Intensity)
		assert.Equal(t, 400.0, fp.KG)

		fp, err = CarbonFootprint(1000, math.NaN())
		require.NoError(t, err)
		assert.Equal(t, DefaultCarbonIntensity, fp.Intensity)
	})

	t.Run("trees round up", func(t *testing.T) {
		// 101 kWh * 200 g = 20.2 kg -> 2 trees
		fp, err := CarbonFootprint(101, 200)
		require.NoError(t, err)
		assert.Equal(t, 2, fp.TreesNeeded)

		fp, err = CarbonFootprint(0, 200)
		require.NoError(t, err)
		assert.Equal(t, 0, fp.TreesNeeded)
	})

	t.Run("negative kwh", func(t *testing.T) {
		_, err := CarbonFootprint(-1, 400)
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("intensity from context", func(t *testing.T) {
		assert.Equal(t, 0.0, IntensityFrom(nil))
		assert.Equal(t, 250.0, IntensityFrom(&types.CarbonContext{CarbonIntensity: 250}))
	})
}
