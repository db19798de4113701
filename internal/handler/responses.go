package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/logger"
)

// Standard response types for consistent API responses

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

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; nothing useful left to tell the client.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped error.
// Client mistakes log at warn, everything else at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Catalog lookups
	ErrMsgUnknownCropError      = "Unknown crop"
	ErrMsgUnknownMachineryError = "Unknown machinery"
	ErrMsgPlotNotFoundError     = "Plot not found"

	// Wallet and stock
	ErrMsgNotEnoughMoneyError  = "Not enough coins"
	ErrMsgNotEnoughCryptoError = "Not enough crypto"
	ErrMsgAmountTooSmallError  = "Amount is too small for the current rate"
	ErrMsgInsufficientStockErr = "Not enough stock"
	ErrMsgNothingToSellError   = "Nothing to sell"
	ErrMsgInvalidQuantityError = "Quantity must be positive"
	ErrMsgInvalidInputError    = "Invalid input"
	ErrMsgNothingToMaintainErr = "All machines are in top condition"
	ErrMsgNoUnitAvailableError = "No machine of that kind available"
	ErrMsgMaxFarmSizeError     = "Your farm is already at maximum size"

	// Plot state
	ErrMsgPlotOccupiedError = "That plot is already planted"
	ErrMsgPlotEmptyError    = "That plot is empty"
	ErrMsgNotEligibleError  = "That plot doesn't need this right now"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnknownCrop):
		return http.StatusNotFound, ErrMsgUnknownCropError
	case errors.Is(err, domain.ErrUnknownMachinery):
		return http.StatusNotFound, ErrMsgUnknownMachineryError
	case errors.Is(err, domain.ErrPlotOutOfRange):
		return http.StatusNotFound, ErrMsgPlotNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInsufficientCrypto):
		return http.StatusBadRequest, ErrMsgNotEnoughCryptoError
	case errors.Is(err, domain.ErrAmountTooSmall):
		return http.StatusBadRequest, ErrMsgAmountTooSmallError
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, ErrMsgInsufficientStockErr
	case errors.Is(err, domain.ErrNothingToSell):
		return http.StatusBadRequest, ErrMsgNothingToSellError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrPlotOccupied):
		return http.StatusConflict, ErrMsgPlotOccupiedError
	case errors.Is(err, domain.ErrPlotEmpty):
		return http.StatusConflict, ErrMsgPlotEmptyError
	case errors.Is(err, domain.ErrNotEligible):
		return http.StatusConflict, ErrMsgNotEligibleError
	case errors.Is(err, domain.ErrNothingToMaintain):
		return http.StatusConflict, ErrMsgNothingToMaintainErr
	case errors.Is(err, domain.ErrNoUnitAvailable):
		return http.StatusConflict, ErrMsgNoUnitAvailableError
	case errors.Is(err, domain.ErrMaxFarmSize):
		return http.StatusConflict, ErrMsgMaxFarmSizeError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
