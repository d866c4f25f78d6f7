package server

import (
	"context"

	"github.com/energywise/energywise/pkg/types"
	"github.com/stretchr/testify/mock"
)

type mockContext struct {
	mock.Mock
}

func (m *mockContext) Resolve(ctx context.Context, city, zone string) (*types.WeatherContext, *types.CarbonContext) {
	args := m.Called(ctx, city, zone)
	var weather *types.WeatherContext
	var carbon *types.CarbonContext
	if w := args.Get(0); w != nil {
		weather = w.(*types.WeatherContext)
	}
	if c := args.Get(1); c != nil {
		carbon = c.(*types.CarbonContext)
	}
	return weather, carbon
}

func (m *mockContext) Carbon(ctx context.Context, zone string) *types.CarbonContext {
	args := m.Called(ctx, zone)
	if c := args.Get(0); c != nil {
		return c.(*types.CarbonContext)
	}
	return nil
}
