package storagemock

import (
	"context"

	"github.com/energywise/energywise/pkg/storage"
	"github.com/energywise/energywise/pkg/types"
	"github.com/stretchr/testify/mock"
)

type MockDatabase struct {
	mock.Mock
}

var _ storage.Database = (*MockDatabase)(nil)

func (m *MockDatabase) GetPlans(ctx context.Context) ([]types.ElectricityPlan, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]types.ElectricityPlan), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDatabase) SetPlans(ctx context.Context, plans []types.ElectricityPlan) error {
	args := m.Called(ctx, plans)
	return args.Error(0)
}

func (m *MockDatabase) GetAppliances(ctx context.Context) ([]types.ApplianceProfile, error) {
	args := m.Called(ctx)
	if a := args.Get(0); a != nil {
		return a.([]types.ApplianceProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDatabase) SetAppliances(ctx context.Context, appliances []types.ApplianceProfile) error {
	args := m.Called(ctx, appliances)
	return args.Error(0)
}

func (m *MockDatabase) Close() error {
	args := m.Called()
	return args.Error(0)
}
