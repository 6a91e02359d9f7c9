// Package httperr writes API errors in a single JSON shape:
// {"error": {"code": "...", "message": "..."}}.
// Internal causes are logged by the caller, never echoed to the client.
package httperr

import (
	"encoding/json"
	"net/http"
)

// Machine-readable error codes exposed on the wire.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Write encodes an error response with the given status, code and message.
func Write(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// ValidationError answers 422 for malformed or missing request fields.
func ValidationError(w http.ResponseWriter, message string) {
	Write(w, http.StatusUnprocessableEntity, CodeValidationError, message)
}

// NotFound answers 404 when the referenced id has no document.
func NotFound(w http.ResponseWriter, message string) {
	Write(w, http.StatusNotFound, CodeNotFound, message)
}

// InternalError answers 500 with a generic message.
func InternalError(w http.ResponseWriter) {
	Write(w, http.StatusInternalServerError, CodeInternalError, "Internal server error")
}
