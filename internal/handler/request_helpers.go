package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/logger"
)

// maxRequestBodyBytes caps decoded JSON bodies; the server applies its own limit as well.
const maxRequestBodyBytes = 1 << 16

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req SellRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgRequestDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	return validateOrRespond(w, log, req)
}

// ParseInventoryFilter reads the inventory filter from the query string and validates it.
// On failure the response has already been written.
func ParseInventoryFilter(r *http.Request, w http.ResponseWriter) (domain.InventoryFilter, bool) {
	log := logger.FromContext(r.Context())
	q := r.URL.Query()

	filter := domain.InventoryFilter{
		Name:   q.Get(QueryParamName),
		Type:   q.Get(QueryParamType),
		Rarity: domain.Rarity(q.Get(QueryParamRarity)),
	}

	if raw := q.Get(QueryParamShiny); raw != "" {
		shiny, err := strconv.ParseBool(raw)
		if err != nil {
			log.Warn(LogMsgInvalidRequest, "param", QueryParamShiny, "value", raw)
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: map[string]string{QueryParamShiny: "Must be true or false"},
			})
			return filter, false
		}
		filter.Shiny = &shiny
	}

	if err := validateOrRespond(w, log, filter); err != nil {
		return filter, false
	}
	return filter, true
}

func validateOrRespond(w http.ResponseWriter, log *slog.Logger, req interface{}) error {
	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgInvalidRequest, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}
