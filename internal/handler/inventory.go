package handler

import (
	"net/http"

	"github.com/osse101/PackSim_Go/internal/collection"
	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/logger"
)

// SellRequest identifies one collection entry to sell.
type SellRequest struct {
	ID string `json:"id" validate:"required,max=64,excludesall=\x00\n\r\t"`
}

// SellResponse reports the outcome of a sell action.
type SellResponse struct {
	Message string             `json:"message"`
	Result  *domain.SellResult `json:"result"`
}

// DuplicatesResponse lists the duplicate view of the collection.
type DuplicatesResponse struct {
	Items []domain.Item `json:"items"`
	Count int           `json:"count"`
}

// HandleGetInventory returns the filtered collection view
// @Summary Get inventory
// @Description Filtered collection view. The response carries the shown count and the unfiltered total.
// @Tags inventory
// @Produce json
// @Param name query string false "Case-insensitive name substring"
// @Param type query string false "Creature type"
// @Param rarity query string false "Rarity tier" Enums(common, uncommon, rare, epic, legendary)
// @Param shiny query bool false "Only shiny (true) or only non-shiny (false) items"
// @Success 200 {object} domain.InventoryView
// @Failure 400 {object} ValidationErrorResponse
// @Router /inventory [get]
func HandleGetInventory(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := ParseInventoryFilter(r, w)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, svc.Inventory(r.Context(), filter))
	}
}

// HandleGetDuplicates returns the items the active variant counts as duplicates
// @Summary Get duplicates
// @Description Catalog variant: entries with quantity above one. Pokebox variant: every copy after the first of each name.
// @Tags inventory
// @Produce json
// @Success 200 {object} DuplicatesResponse
// @Router /inventory/duplicates [get]
func HandleGetDuplicates(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.Duplicates(r.Context())
		if items == nil {
			items = []domain.Item{}
		}
		respondJSON(w, http.StatusOK, DuplicatesResponse{Items: items, Count: len(items)})
	}
}

// HandleSellItem sells one collection entry
// @Summary Sell item
// @Description Sell one entry by id. Unknown ids are a no-op reported with sold=false.
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body SellRequest true "Item to sell"
// @Success 200 {object} SellResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory/sell [post]
func HandleSellItem(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
			return
		}

		result, err := svc.Sell(r.Context(), req.ID)
		if err != nil {
			respondServiceError(w, r, ErrMsgSellItemFailed, err)
			return
		}

		msg := MsgItemNotOwned
		if result.Sold {
			msg = MsgItemSold
			log.Info(LogMsgItemSold, "id", req.ID, "copies", result.Copies, "value", result.Value)
		}
		respondJSON(w, http.StatusOK, SellResponse{Message: msg, Result: result})
	}
}

// HandleSellDuplicates sells every duplicate in the collection
// @Summary Sell all duplicates
// @Description Sell every duplicate, leaving at most one entry per creature name.
// @Tags inventory
// @Produce json
// @Success 200 {object} SellResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory/sell-duplicates [post]
func HandleSellDuplicates(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		result, err := svc.SellAllDuplicates(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgSellDuplicateFailed, err)
			return
		}

		msg := MsgNoDuplicates
		if result.Sold {
			msg = MsgDuplicatesSold
			log.Info(LogMsgDuplicatesSold, "copies", result.Copies, "value", result.Value)
		}
		respondJSON(w, http.StatusOK, SellResponse{Message: msg, Result: result})
	}
}
