package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"k8s.io/klog/v2"

	"github.com/ocinet/ocinet/internal/config"
)

// errorResponse is the body of every error response.
type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError writes a JSON error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, &errorResponse{Error: message})
}

// handleError converts configuration and upstream errors to HTTP errors.
// A missing compartment is reported with 200 so callers can still use the
// error object as their inventory context.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, config.ErrCompartmentNotSet):
		respondError(w, http.StatusOK, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		klog.FromContext(r.Context()).Error(err, "Upstream call timed out", "path", r.URL.Path)
		respondError(w, http.StatusGatewayTimeout, err.Error())
	default:
		klog.FromContext(r.Context()).Error(err, "Upstream call failed", "path", r.URL.Path)
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
