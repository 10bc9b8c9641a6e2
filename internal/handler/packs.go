package handler

import (
	"net/http"

	"github.com/osse101/PackSim_Go/internal/collection"
	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/logger"
)

// OpenPackResponse wraps a pack result with the summary banner.
type OpenPackResponse struct {
	Message     string             `json:"message"`
	AmazingPull bool               `json:"amazing_pull"`
	Missing     int                `json:"missing,omitempty"` // cards the source failed to reveal
	Result      *domain.PackResult `json:"result"`
}

// HandleOpenPack purchases and reveals one pack
// @Summary Open a pack
// @Description Spend the pack cost and reveal a pack of creatures. Cards the source fails to reveal are omitted and not refunded.
// @Tags packs
// @Produce json
// @Success 200 {object} OpenPackResponse
// @Failure 400 {object} ErrorResponse "Not enough coins"
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /packs/open [post]
func HandleOpenPack(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		result, err := svc.OpenPack(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgOpenPackFailed, err)
			return
		}

		resp := OpenPackResponse{
			Message:     MsgPackOpened,
			AmazingPull: result.AmazingPull(),
			Missing:     result.Requested - len(result.Items),
			Result:      result,
		}
		switch {
		case resp.AmazingPull:
			resp.Message = MsgAmazingPull
		case resp.Missing > 0:
			resp.Message = MsgPartialPackOpened
		}

		log.Info(LogMsgPackOpened,
			"revealed", len(result.Items),
			"requested", result.Requested,
			"rare", result.RareCount,
			"coins", result.Stats.Coins)

		respondJSON(w, http.StatusOK, resp)
	}
}
