package catalog

import "github.com/energywise/energywise/pkg/types"

// DefaultPlans returns the built-in plan catalog.
func DefaultPlans() []types.ElectricityPlan {
	return []types.ElectricityPlan{
		{ID: 1, Provider: "GreenEnergy Co", PlanName: "EcoSaver Plus", Rate: 0.12, PeakRate: 0.18, OffPeakRate: 0.08, Renewable: 100, ContractLength: 12, MonthlyFee: 15},
		{ID: 2, Provider: "PowerGrid Solutions", PlanName: "Standard Fixed", Rate: 0.15, PeakRate: 0.20, OffPeakRate: 0.10, Renewable: 30, ContractLength: 24, MonthlyFee: 10},
		{ID: 3, Provider: "CitiPower", PlanName: "Flexible Rates", Rate: 0.14, PeakRate: 0.19, OffPeakRate: 0.09, Renewable: 50, ContractLength: 12, MonthlyFee: 12},
		{ID: 4, Provider: "SolarFirst Energy", PlanName: "100% Solar", Rate: 0.13, PeakRate: 0.17, OffPeakRate: 0.09, Renewable: 100, ContractLength: 18, MonthlyFee: 18},
		{ID: 5, Provider: "Budget Power", PlanName: "Economy Choice", Rate: 0.16, PeakRate: 0.22, OffPeakRate: 0.11, Renewable: 10, ContractLength: 12, MonthlyFee: 8},
		{ID: 6, Provider: "WindPower Inc", PlanName: "Green Future", Rate: 0.13, PeakRate: 0.16, OffPeakRate: 0.10, Renewable: 85, ContractLength: 24, MonthlyFee: 14},
		{ID: 7, Provider: "NaturalChoice Energy", PlanName: "Balanced Plan", Rate: 0.14, PeakRate: 0.18, OffPeakRate: 0.09, Renewable: 60, ContractLength: 12, MonthlyFee: 11},
		{ID: 8, Provider: "EcoFlow Power", PlanName: "Smart Saver", Rate: 0.11, PeakRate: 0.15, OffPeakRate: 0.07, Renewable: 95, ContractLength: 36, MonthlyFee: 20},
	}
}

// DefaultAppliances returns the built-in appliance profiles. Hours are typical
// daily usage.
func DefaultAppliances() []types.ApplianceProfile {
	return []types.ApplianceProfile{
		{Name: "refrigerator", Watts: 150, HoursPerDay: 24},
		{Name: "washingMachine", Watts: 500, HoursPerDay: 1},
		{Name: "dryer", Watts: 3000, HoursPerDay: 1},
		{Name: "dishwasher", Watts: 1800, HoursPerDay: 1},
		{Name: "airConditioner", Watts: 3500, HoursPerDay: 8},
		{Name: "heater", Watts: 1500, HoursPerDay: 6},
		{Name: "tv", Watts: 100, HoursPerDay: 5},
		{Name: "computer", Watts: 200, HoursPerDay: 8},
		{Name: "lights", Watts: 60, HoursPerDay: 6},
		{Name: "oven", Watts: 2400, HoursPerDay: 1},
		{Name: "microwave", Watts: 1200, HoursPerDay: 0.5},
		{Name: "waterHeater", Watts: 4000, HoursPerDay: 3},
		{Name: "kettle", Watts: 1500, HoursPerDay: 0.5},
		{Name: "toaster", Watts: 1200, HoursPerDay: 0.2},
		{Name: "vacuum", Watts: 1400, HoursPerDay: 0.5},
		{Name: "fan", Watts: 75, HoursPerDay: 8},
	}
}

// Default returns a Catalog of the built-in plans and appliances. Each call
// allocates a new Catalog.
func Default() *Catalog {
	c, err := New(DefaultPlans(), DefaultAppliances())
	if err != nil {
		panic("invalid default catalog: " + err.Error())
	}
	return c
}
