// Package httpx holds the small HTTP helpers shared by every handler:
// response writing, middleware chaining, authentication and rate limiting.
package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agrisense/agrisense/pkg/slogx"
)

// ErrorResponse is the wire shape of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the wire shape of status-only success responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slogx.FromContext(r.Context()).Error("encode response", slog.Any("error", err))
	}
}

// WriteError writes the flat {"error": message} body every failure path uses.
func WriteError(w http.ResponseWriter, r *http.Request, status int, message string) {
	WriteJSON(w, r, status, ErrorResponse{Error: message})
}

// NoCache marks a response as non-cacheable. Token and OTP responses must
// never be served from an intermediary cache.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DecodeJSON decodes the request body into v. Unknown fields are ignored.
func DecodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
