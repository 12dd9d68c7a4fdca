package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a confirmation response.
type MessageResponse struct {
	Message string `json:"message"`
}

// fieldTypes maps product body fields to their expected JSON types,
// for validation messages.
var fieldTypes = map[string]string{
	"name":    "string",
	"price":   "number",
	"inStock": "boolean",
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// decodeBody decodes the request body into dst. It returns a
// client-facing message on failure, or "" on success. A type mismatch
// on a known field yields a field-specific message.
func decodeBody(r *http.Request, dst interface{}) string {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			if want, ok := fieldTypes[typeErr.Field]; ok {
				return fmt.Sprintf("Field '%s' must be a %s", typeErr.Field, want)
			}
			return fmt.Sprintf("Field '%s' has an invalid type", typeErr.Field)
		}
		return "Invalid JSON body"
	}
	return ""
}
