package server

import (
	"net/http"

	"github.com/energywise/energywise/pkg/calc"
	"github.com/energywise/energywise/pkg/types"
)

type applianceInfo struct {
	types.ApplianceProfile
	DisplayName string `json:"displayName"`
}

func (s *Server) handleListAppliances(w http.ResponseWriter, r *http.Request) {
	appliances := s.catalog.Appliances()
	out := make([]applianceInfo, len(appliances))
	for i, a := range appliances {
		out[i] = applianceInfo{
			ApplianceProfile: a,
			DisplayName:      calc.FormatApplianceName(a.Name),
		}
	}
	writeJSON(w, out)
}
