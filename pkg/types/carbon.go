package types

// WeatherContext is the normalized weather observation returned by the
// external data adapter.
type WeatherContext struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    float64 `json:"humidity"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	IsReal      bool    `json:"isReal"`
}

// WeatherInsight is the weather annotation attached to a cost result.
type WeatherInsight struct {
	Temperature    float64 `json:"temperature"`
	Condition      string  `json:"condition"`
	Recommendation string  `json:"recommendation"`
}

// CarbonContext is the normalized grid carbon intensity returned by the
// external data adapter.
type CarbonContext struct {
	CarbonIntensity      float64 `json:"carbonIntensity"`
	FossilFuelPercentage float64 `json:"fossilFuelPercentage"`
	RenewablePercentage  float64 `json:"renewablePercentage"`
	Zone                 string  `json:"zone"`
	Source               string  `json:"source"`
	IsReal               bool    `json:"isReal"`
}

// CarbonFootprint is the CO2 emitted for some amount of energy.
type CarbonFootprint struct {
	Grams       float64 `json:"grams"`
	KG          float64 `json:"kg"`
	Tonnes      float64 `json:"tonnes"`
	TreesNeeded int     `json:"treesNeeded"`

	// Intensity is the grams of CO2 per kWh the footprint was computed with.
	Intensity float64 `json:"intensity"`
}

// HourlyIntensity is one hour of a carbon intensity profile.
type HourlyIntensity struct {
	Hour      int     `json:"hour"`
	Intensity float64 `json:"intensity"`
	Label     string  `json:"label"`
	IsClean   bool    `json:"isClean"`
}

// HourlyOutlook is the rate and intensity a plan holder would see in one hour.
type HourlyOutlook struct {
	Hour          int     `json:"hour"`
	Label         string  `json:"label"`
	DollarsPerKWH float64 `json:"dollarsPerKWH"`
	OffPeak       bool    `json:"offPeak"`
	Intensity     float64 `json:"intensity"`
	IsClean       bool    `json:"isClean"`
	Recommended   bool    `json:"recommended"`
}
