package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/energywise/energywise/pkg/advisor"
	"github.com/energywise/energywise/pkg/calc"
	"github.com/energywise/energywise/pkg/external"
	"github.com/energywise/energywise/pkg/types"
)

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	var filters types.PlanFilters
	var err error
	if filters.MinRenewable, err = floatParam(r, "minRenewable"); err != nil {
		writeError(w, r, err)
		return
	}
	if filters.MaxRate, err = floatParam(r, "maxRate"); err != nil {
		writeError(w, r, err)
		return
	}
	filters.SortBy = types.SortKey(r.URL.Query().Get("sortBy"))

	plans, err := advisor.FilterAndSortPlans(s.catalog.Plans(), filters)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, plans)
}

type compareResponse struct {
	types.PlanComparison
	Chart       types.ComparisonChart `json:"chart"`
	AverageRate float64               `json:"averageRate"`
}

func (s *Server) handleComparePlans(w http.ResponseWriter, r *http.Request) {
	kwh, err := floatParam(r, "monthlyKwh")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if kwh == nil {
		writeJSONError(w, "monthlyKwh is required", http.StatusBadRequest)
		return
	}

	plans := s.catalog.Plans()
	cmp, err := advisor.ComparePlans(plans, *kwh)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, compareResponse{
		PlanComparison: cmp,
		Chart:          advisor.ComparisonChart(cmp.Comparison),
		AverageRate:    advisor.AverageRate(plans),
	})
}

type outlookResponse struct {
	Plan    types.ElectricityPlan `json:"plan"`
	OffPeak types.TimePeriod      `json:"offPeak"`
	Hours   []types.HourlyOutlook `json:"hours"`
}

func (s *Server) handlePlanOutlook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, fmt.Errorf("plan id must be an integer: %w", types.ErrInvalidInput))
		return
	}
	plan, err := s.catalog.Plan(id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	carbon := s.external.Carbon(r.Context(), r.URL.Query().Get("zone"))
	hours, err := advisor.HourlyOutlook(plan, external.Forecast(calc.IntensityFrom(carbon)), s.offPeak)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, outlookResponse{Plan: plan, OffPeak: s.offPeak, Hours: hours})
}
