package server

import (
	"net/http"
	"strings"

	"github.com/energywise/energywise/pkg/catalog"
)

type rateResponse struct {
	State string  `json:"state"`
	Rate  float64 `json:"rate"`
	// Known is false when the national default was used.
	Known bool `json:"known"`
}

func (s *Server) handleFallbackRate(w http.ResponseWriter, r *http.Request) {
	state := strings.ToUpper(r.PathValue("state"))
	rate, ok := catalog.FallbackRate(state)
	writeJSON(w, rateResponse{State: state, Rate: rate, Known: ok})
}
