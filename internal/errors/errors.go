// ABOUTME: Standardized JSON error envelope for the mock backend.
// ABOUTME: Every error response carries a machine code, a message and the HTTP status.

package errors

import (
	"encoding/json"
	"net/http"
)

// Response is the error envelope the API answers with. The admin client
// surfaces Message to the operator, so handlers phrase it for humans.
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Field   string `json:"field,omitempty"`
}

// Error codes shared across handlers.
const (
	CodeInvalidRequest = "invalid_request"
	CodeInvalidBody    = "invalid_request_body"
	CodeMissingField   = "missing_field"
	CodeNotFound       = "not_found"
	CodeInternal       = "internal_error"
	CodeDatabase       = "database_error"
)

// Write serializes an error envelope to the response.
func Write(w http.ResponseWriter, status int, code, message string) {
	write(w, Response{Code: code, Message: message, Status: status})
}

// WriteField is Write with the offending field named, for validation errors.
func WriteField(w http.ResponseWriter, status int, code, message, field string) {
	write(w, Response{Code: code, Message: message, Status: status, Field: field})
}

func write(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	json.NewEncoder(w).Encode(resp)
}
