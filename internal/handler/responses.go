package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Encoding buffers are recycled unless a response grew them past maxPooledBuffer;
// a full-inventory dump should not pin its buffer in the pool.
const maxPooledBuffer = 64 << 10

var encodeBuffers = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		if buf.Cap() <= maxPooledBuffer {
			buf.Reset()
			encodeBuffers.Put(buf)
		}
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped user-facing error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgInvalidRequestError  = "Invalid request. Please check your inputs."
	ErrMsgTooManyRequestsError = "Too many requests. Please try again later."
	ErrMsgUnavailableError     = "Server is temporarily unavailable. Please try again later."

	ErrMsgNotEnoughCoinsError    = "Not enough coins"
	ErrMsgInvalidPackSizeError   = "Invalid pack size"
	ErrMsgInvalidRarityError     = "Invalid rarity"
	ErrMsgCreatureNotFoundError  = "Creature not found"
	ErrMsgSourceUnavailableError = "Creature source is unavailable. Please try again later."
	ErrMsgMalformedCreatureError = "Creature source returned an unexpected response"
	ErrMsgEmptyCatalogError      = "The catalog is empty"
	ErrMsgSaveFailedError        = "Could not save your collection. Nothing was changed."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrInvalidPackSize):
		return http.StatusBadRequest, ErrMsgInvalidPackSizeError
	case errors.Is(err, domain.ErrInvalidRarity):
		return http.StatusBadRequest, ErrMsgInvalidRarityError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrCreatureNotFound):
		return http.StatusNotFound, ErrMsgCreatureNotFoundError
	case errors.Is(err, domain.ErrSourceUnavailable):
		return http.StatusServiceUnavailable, ErrMsgSourceUnavailableError
	case errors.Is(err, domain.ErrMalformedCreature):
		return http.StatusBadGateway, ErrMsgMalformedCreatureError
	case errors.Is(err, domain.ErrEmptyCatalog):
		return http.StatusServiceUnavailable, ErrMsgEmptyCatalogError
	case errors.Is(err, domain.ErrStoreWrite):
		return http.StatusInternalServerError, ErrMsgSaveFailedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
