package types

// ElectricityPlan is an immutable entry in the plan catalog.
type ElectricityPlan struct {
	ID       int    `json:"id" yaml:"id"`
	Provider string `json:"provider" yaml:"provider"`
	PlanName string `json:"planName" yaml:"planName"`

	// Rate is the flat standard rate in dollars per kWh.
	Rate        float64 `json:"rate" yaml:"rate"`
	PeakRate    float64 `json:"peakRate" yaml:"peakRate"`
	OffPeakRate float64 `json:"offPeakRate" yaml:"offPeakRate"`

	// Renewable is the percentage (0-100) of the plan sourced from renewables.
	Renewable float64 `json:"renewable" yaml:"renewable"`

	// ContractLength is in months.
	ContractLength int `json:"contractLength" yaml:"contractLength"`

	// MonthlyFee is the fixed monthly charge in dollars.
	MonthlyFee float64 `json:"monthlyFee" yaml:"monthlyFee"`
}

// SortKey selects the ordering applied by plan filtering.
type SortKey string

const (
	SortNone      SortKey = ""
	SortPrice     SortKey = "price"
	SortRenewable SortKey = "renewable"
	SortContract  SortKey = "contract"
)

// PlanFilters are the optional user criteria used when listing plans. A nil
// bound is not applied.
type PlanFilters struct {
	MinRenewable *float64 `json:"minRenewable,omitempty"`
	MaxRate      *float64 `json:"maxRate,omitempty"`
	SortBy       SortKey  `json:"sortBy,omitempty"`
}

// PlanComparisonEntry is a plan together with its estimated cost for a
// particular monthly usage.
type PlanComparisonEntry struct {
	ElectricityPlan
	EstimatedMonthlyCost float64 `json:"estimatedMonthlyCost"`
	EnergyCost           float64 `json:"energyCost"`
}

// PlanInsights summarizes a plan comparison.
type PlanInsights struct {
	CheapestPlan     string  `json:"cheapestPlan"`
	CheapestProvider string  `json:"cheapestProvider"`
	MaxYearlySavings float64 `json:"maxYearlySavings"`
	MonthlyKWH       float64 `json:"monthlyKWH"`
}

// PlanComparison is every catalog plan ranked ascending by estimated monthly
// cost.
type PlanComparison struct {
	Comparison []PlanComparisonEntry `json:"comparison"`
	Insights   PlanInsights          `json:"insights"`
}

// ComparisonChart is a column-oriented view of a comparison for charting.
type ComparisonChart struct {
	Labels    []string  `json:"labels"`
	Costs     []float64 `json:"costs"`
	Renewable []float64 `json:"renewable"`
}

// PlanSavings is a compared plan with the savings a user would see by
// switching to it from their current monthly cost.
type PlanSavings struct {
	PlanComparisonEntry
	Savings Savings `json:"savings"`
	Best    bool    `json:"best"`
}
