package server

import (
	"fmt"
	"net/http"

	"github.com/energywise/energywise/pkg/calc"
	"github.com/energywise/energywise/pkg/types"
)

type timeShiftRequest struct {
	KWH float64 `json:"kwh"`
	// PlanID takes the peak and off-peak rates from a catalog plan.
	PlanID          *int     `json:"planId"`
	PeakRate        float64  `json:"peakRate"`
	OffPeakRate     float64  `json:"offPeakRate"`
	OffPeakFraction *float64 `json:"offPeakFraction"`
}

func (s *Server) handleTimeShift(w http.ResponseWriter, r *http.Request) {
	var req timeShiftRequest
	if !decodeBody(w, r, &req) {
		return
	}

	peak, offPeak := req.PeakRate, req.OffPeakRate
	if req.PlanID != nil {
		plan, err := s.catalog.Plan(*req.PlanID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		peak, offPeak = plan.PeakRate, plan.OffPeakRate
	}
	fraction := calc.DefaultOffPeakFraction
	if req.OffPeakFraction != nil {
		fraction = *req.OffPeakFraction
	}

	res, err := calc.TimeShiftSavings(req.KWH, peak, offPeak, fraction)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, res)
}

type paybackRequest struct {
	UpfrontCost    *float64 `json:"upfrontCost"`
	MonthlySavings *float64 `json:"monthlySavings"`
}

func (s *Server) handlePayback(w http.ResponseWriter, r *http.Request) {
	var req paybackRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UpfrontCost == nil || req.MonthlySavings == nil {
		writeError(w, r, fmt.Errorf("upfrontCost and monthlySavings are required: %w", types.ErrInvalidInput))
		return
	}

	res, err := calc.PaybackPeriod(*req.UpfrontCost, *req.MonthlySavings)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, res)
}
