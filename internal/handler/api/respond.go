// Package api contains the JSON HTTP handlers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/nikhilbhatia/upahaar/internal/domain"
	"github.com/nikhilbhatia/upahaar/internal/middleware"
)

// errorResponse is the JSON body for every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing recoverable remains.
		return
	}
}

// writeError maps a domain error code to an HTTP status and writes the
// user-safe message. Internal errors are logged with full detail but never
// shown to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	if code == domain.EINTERNAL {
		middleware.GetLogger(r.Context()).Error("request failed", "error", err)
	}
	writeJSON(w, statusFromCode(code), errorResponse{Error: domain.ErrorMessage(err)})
}

func statusFromCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.WrapError(err, domain.EINVALID, "api.decode", "Invalid request body")
	}
	return nil
}
