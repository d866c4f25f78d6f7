// Package catalog holds the electricity plans and appliance profiles that the
// calculators work against.
//
// A Catalog is immutable once built. Accessors return copies so callers can
// sort or filter them freely.
package catalog

import (
	"fmt"
	"math"

	"github.com/energywise/energywise/pkg/types"
)

// Catalog is a validated set of plans and appliances.
type Catalog struct {
	plans      []types.ElectricityPlan
	appliances []types.ApplianceProfile
	byName     map[string]types.ApplianceProfile
}

// New validates plans and appliances and returns a Catalog holding copies of
// them.
func New(plans []types.ElectricityPlan, appliances []types.ApplianceProfile) (*Catalog, error) {
	ids := make(map[int]struct{}, len(plans))
	for _, p := range plans {
		if err := validatePlan(p); err != nil {
			return nil, err
		}
		if _, ok := ids[p.ID]; ok {
			return nil, fmt.Errorf("duplicate plan id %d: %w", p.ID, types.ErrInvalidInput)
		}
		ids[p.ID] = struct{}{}
	}

	byName := make(map[string]types.ApplianceProfile, len(appliances))
	for _, a := range appliances {
		if err := validateAppliance(a); err != nil {
			return nil, err
		}
		if _, ok := byName[a.Name]; ok {
			return nil, fmt.Errorf("duplicate appliance %q: %w", a.Name, types.ErrInvalidInput)
		}
		byName[a.Name] = a
	}

	return &Catalog{
		plans:      append([]types.ElectricityPlan(nil), plans...),
		appliances: append([]types.ApplianceProfile(nil), appliances...),
		byName:     byName,
	}, nil
}

func validatePlan(p types.ElectricityPlan) error {
	for _, v := range []float64{p.Rate, p.PeakRate, p.OffPeakRate, p.Renewable, p.MonthlyFee} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("plan %d has a non-finite value: %w", p.ID, types.ErrInvalidInput)
		}
	}
	switch {
	case p.Rate <= 0:
		return fmt.Errorf("plan %d rate must be greater than 0: %w", p.ID, types.ErrInvalidInput)
	case p.PeakRate < 0 || p.OffPeakRate < 0:
		return fmt.Errorf("plan %d peak and off-peak rates must not be negative: %w", p.ID, types.ErrInvalidInput)
	case p.Renewable < 0 || p.Renewable > 100:
		return fmt.Errorf("plan %d renewable percentage must be within 0-100: %w", p.ID, types.ErrInvalidInput)
	case p.ContractLength <= 0:
		return fmt.Errorf("plan %d contract length must be greater than 0: %w", p.ID, types.ErrInvalidInput)
	case p.MonthlyFee < 0:
		return fmt.Errorf("plan %d monthly fee must not be negative: %w", p.ID, types.ErrInvalidInput)
	}
	return nil
}

func validateAppliance(a types.ApplianceProfile) error {
	if a.Name == "" {
		return fmt.Errorf("appliance name is required: %w", types.ErrInvalidInput)
	}
	if math.IsNaN(a.Watts) || math.IsInf(a.Watts, 0) || a.Watts <= 0 {
		return fmt.Errorf("appliance %s watts must be greater than 0: %w", a.Name, types.ErrInvalidInput)
	}
	if math.IsNaN(a.HoursPerDay) || math.IsInf(a.HoursPerDay, 0) || a.HoursPerDay < 0 {
		return fmt.Errorf("appliance %s hours per day must not be negative: %w", a.Name, types.ErrInvalidInput)
	}
	return nil
}

// Plans returns a copy of the plans in catalog order.
func (c *Catalog) Plans() []types.ElectricityPlan {
	return append([]types.ElectricityPlan(nil), c.plans...)
}

// Appliances returns a copy of the appliances in catalog order.
func (c *Catalog) Appliances() []types.ApplianceProfile {
	return append([]types.ApplianceProfile(nil), c.appliances...)
}

// ApplianceMap returns a fresh map of the appliances keyed by name.
func (c *Catalog) ApplianceMap() map[string]types.ApplianceProfile {
	m := make(map[string]types.ApplianceProfile, len(c.byName))
	for k, v := range c.byName {
		m[k] = v
	}
	return m
}

// Plan returns the plan with the given id.
func (c *Catalog) Plan(id int) (types.ElectricityPlan, error) {
	for _, p := range c.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return types.ElectricityPlan{}, fmt.Errorf("plan %d: %w", id, types.ErrUnknownEntity)
}

// Appliance returns the appliance with the given name.
func (c *Catalog) Appliance(name string) (types.ApplianceProfile, error) {
	if a, ok := c.byName[name]; ok {
		return a, nil
	}
	return types.ApplianceProfile{}, fmt.Errorf("appliance %q: %w", name, types.ErrUnknownEntity)
}
