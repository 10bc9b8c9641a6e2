package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PackSim_Go/internal/collection"
	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/logger"
)

// HandleGetProfile returns stats, level, achievements and history
// @Summary Get profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Router /profile [get]
func HandleGetProfile(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Profile(r.Context()))
	}
}

// HandleGetCreature returns the detail view of one creature
// @Summary Get creature detail
// @Description Abilities and base stats for the inventory detail view
// @Tags creatures
// @Produce json
// @Param name path string true "Creature name, e.g. pikachu"
// @Success 200 {object} domain.Creature
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /creatures/{name} [get]
func HandleGetCreature(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.ToLower(strings.TrimSpace(chi.URLParam(r, PathParamName)))

		if err := GetValidator().ValidateVar(name, "required,max=64,creaturename"); err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgInvalidRequest, "name", name, "error", err)
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: map[string]string{PathParamName: "Invalid creature name"},
			})
			return
		}

		creature, err := svc.Creature(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetCreatureFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, creature)
	}
}

// HandleGetCatalog lists the local catalog
// @Summary Get catalog
// @Description Catalog entries with their fixed rarity. Empty when the pokebox variant draws from the remote API.
// @Tags creatures
// @Produce json
// @Success 200 {array} domain.CatalogEntry
// @Router /catalog [get]
func HandleGetCatalog(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := svc.Catalog(r.Context())
		if entries == nil {
			entries = []domain.CatalogEntry{}
		}
		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleGetTypes returns the type badge colour table
// @Summary Get type colours
// @Tags creatures
// @Produce json
// @Success 200 {array} domain.TypeBadge
// @Router /types [get]
func HandleGetTypes(svc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Types(r.Context()))
	}
}
