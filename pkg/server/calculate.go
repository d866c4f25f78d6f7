package server

import (
	"fmt"
	"net/http"

	"github.com/energywise/energywise/pkg/advisor"
	"github.com/energywise/energywise/pkg/calc"
	"github.com/energywise/energywise/pkg/external"
	"github.com/energywise/energywise/pkg/types"
)

// Input bounds accepted from clients.
const (
	minRate         = 0.01
	maxRate         = 1.0
	minMonthlyCost  = 1.0
	maxMonthlyCost  = 10000.0
	minMonthlyUsage = 1.0
	maxMonthlyUsage = 100000.0

	topPlans = 3
)

type calculateRequest struct {
	Appliances []string `json:"appliances"`
	Rate       float64  `json:"rate"`
	Days       int      `json:"days"`
	City       string   `json:"city"`
	Zone       string   `json:"zone"`
}

type calculateResponse struct {
	types.CostResult
	Footprint types.CarbonFootprint `json:"carbonFootprint"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Rate < minRate || req.Rate > maxRate {
		writeJSONError(w, fmt.Sprintf("rate must be between %v and %v", minRate, maxRate), http.StatusBadRequest)
		return
	}
	if req.Days == 0 {
		req.Days = calc.DefaultDaysPerMonth
	}

	sel, err := types.NewUsageSelection(req.Appliances, req.Rate, req.Days)
	if err != nil {
		writeError(w, r, err)
		return
	}
	result, err := calc.ComputeBreakdown(sel, s.catalog.ApplianceMap())
	if err != nil {
		writeError(w, r, err)
		return
	}

	weather, carbon := s.external.Resolve(r.Context(), req.City, req.Zone)
	result.Weather = external.WeatherInsight(weather, sel)
	result.Carbon = carbon

	footprint, err := calc.CarbonFootprint(result.TotalKWH, calc.IntensityFrom(carbon))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, calculateResponse{CostResult: result, Footprint: footprint})
}

type optimizeRequest struct {
	CurrentCost   float64 `json:"currentCost"`
	MonthlyUsage  float64 `json:"monthlyUsage"`
	HouseholdSize int     `json:"householdSize"`
	Zone          string  `json:"zone"`
}

type optimizeResponse struct {
	types.Optimizations
	BetterPlans []types.PlanSavings    `json:"betterPlans"`
	Efficiency  types.EfficiencyRating `json:"efficiency"`
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CurrentCost < minMonthlyCost || req.CurrentCost > maxMonthlyCost {
		writeJSONError(w, fmt.Sprintf("currentCost must be between %v and %v", minMonthlyCost, maxMonthlyCost), http.StatusBadRequest)
		return
	}
	if req.MonthlyUsage < minMonthlyUsage || req.MonthlyUsage > maxMonthlyUsage {
		writeJSONError(w, fmt.Sprintf("monthlyUsage must be between %v and %v", minMonthlyUsage, maxMonthlyUsage), http.StatusBadRequest)
		return
	}

	carbon := s.external.Carbon(r.Context(), req.Zone)
	opt, err := advisor.RecommendOptimizations(req.CurrentCost, req.MonthlyUsage, req.HouseholdSize, carbon)
	if err != nil {
		writeError(w, r, err)
		return
	}
	efficiency, err := calc.EfficiencyRating(req.MonthlyUsage, req.HouseholdSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	cmp, err := advisor.ComparePlans(s.catalog.Plans(), req.MonthlyUsage)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, optimizeResponse{
		Optimizations: opt,
		BetterPlans:   advisor.TopPlanSavings(cmp, req.CurrentCost, topPlans),
		Efficiency:    efficiency,
	})
}
