package storage

import (
	"context"
	"testing"

	"github.com/energywise/energywise/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestConfiguredNone(t *testing.T) {
	c := &configured{}
	ctx := context.Background()

	_, err := c.GetPlans(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, c.SetPlans(ctx, []types.ElectricityPlan{{ID: 1}}), ErrNotConfigured)
	_, err = c.GetAppliances(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, c.SetAppliances(ctx, nil), ErrNotConfigured)
	assert.NoError(t, c.Close())
}
