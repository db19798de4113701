package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleFarm_Go/internal/logger"
)

// MaxRequestBodyBytes bounds every JSON request body.
const MaxRequestBodyBytes = 64 * 1024

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req BuySeedsRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Buy seeds"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam retrieves an optional query parameter from the request,
// falling back to defaultValue when it is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// plotIndexParam parses the {index} route parameter. Range checks are left to
// the service so that the error matches the current farm size.
func plotIndexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || idx < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlotIndex)
		return 0, false
	}
	return idx, true
}

// handleAction decodes and validates the request body, runs the action and
// writes either the mapped service error or the response built from its result.
func handleAction[REQ any, RES any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	action func(context.Context, REQ) (RES, error),
	responseFactory func(RES) interface{},
) {
	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	res, err := action(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, http.StatusOK, responseFactory(res))
}

// handlePlotAction runs a body-less action against the plot in the route.
func handlePlotAction(w http.ResponseWriter, r *http.Request, opName, msg string, action func(context.Context, int) error) {
	idx, ok := plotIndexParam(w, r)
	if !ok {
		return
	}
	if err := action(r.Context(), idx); err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}
