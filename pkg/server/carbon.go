package server

import (
	"net/http"

	"github.com/energywise/energywise/pkg/calc"
	"github.com/energywise/energywise/pkg/external"
	"github.com/energywise/energywise/pkg/types"
)

func (s *Server) handleCarbonFootprint(w http.ResponseWriter, r *http.Request) {
	kwh, err := floatParam(r, "kwh")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if kwh == nil {
		writeJSONError(w, "kwh is required", http.StatusBadRequest)
		return
	}
	intensity, err := floatParam(r, "intensity")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var i float64
	if intensity != nil {
		i = *intensity
	}

	fp, err := calc.CarbonFootprint(*kwh, i)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, fp)
}

type forecastResponse struct {
	Current *types.CarbonContext    `json:"current"`
	Hours   []types.HourlyIntensity `json:"hours"`
}

func (s *Server) handleCarbonForecast(w http.ResponseWriter, r *http.Request) {
	carbon := s.external.Carbon(r.Context(), r.URL.Query().Get("zone"))
	writeJSON(w, forecastResponse{
		Current: carbon,
		Hours:   external.Forecast(calc.IntensityFrom(carbon)),
	})
}
