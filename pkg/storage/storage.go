package storage

import (
	"context"

	"github.com/energywise/energywise/pkg/types"
)

// Database defines the interface for persisting the plan and appliance
// catalog.
type Database interface {
	// Plans
	GetPlans(ctx context.Context) ([]types.ElectricityPlan, error)
	// SetPlans replaces the stored plans with plans.
	SetPlans(ctx context.Context, plans []types.ElectricityPlan) error

	// Appliances
	GetAppliances(ctx context.Context) ([]types.ApplianceProfile, error)
	// SetAppliances replaces the stored appliances with appliances.
	SetAppliances(ctx context.Context, appliances []types.ApplianceProfile) error

	// Lifecycle
	Close() error
}
