package handler

import (
	"net/http"

	"github.com/osse101/PackSim_Go/internal/collection"
)

// HandleGetStats returns the persisted counters and coin balance
// @Summary Get stats
// @Description Packs opened, items caught, rare count and coins
// @Tags profile
// @Produce json
// @Success 200 {object} domain.UserStats
// @Router /stats [get]
func HandleGetStats(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Stats(r.Context()))
	}
}
