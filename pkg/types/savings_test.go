package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaybackPeriodJSON(t *testing.T) {
	t.Run("never pays back", func(t *testing.T) {
		p := PaybackPeriod{Months: math.Inf(1), Years: math.Inf(1)}
		require.True(t, p.NeverPaysBack())
		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"months":null,"years":null,"worthwhile":false,"neverPaysBack":true}`, string(b))
	})

	t.Run("finite", func(t *testing.T) {
		p := PaybackPeriod{Months: 24, Years: 2, Worthwhile: true}
		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"months":24,"years":2,"worthwhile":true,"neverPaysBack":false}`, string(b))
	})
}
