package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/BrandishRewards_Go/internal/logger"
	"github.com/osse101/BrandishRewards_Go/internal/validation"
)

// DecodeAndValidateRequest decodes a JSON request body and validates its struct tags.
// If it returns an error, the response has already been written and the handler
// should return.
//
//	var req GenerateRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Generate rewards"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := validation.GetStructValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validation.FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam returns the query parameter or defaultValue when absent
func GetOptionalQueryParam(r *http.Request, paramName, defaultValue string) string {
	if value := r.URL.Query().Get(paramName); value != "" {
		return value
	}
	return defaultValue
}
