// Package endpoints defines the HTTP API surface. Each endpoint doubles
// as a cobra command that calls the running server.
package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/copydrive/copydrive/internal/api"
)

// Config holds dependencies needed by some endpoints.
type Config struct{}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},

		// Generation endpoints
		&GenerateEndpoint{},

		// Catalog endpoints
		&ListCatalogsEndpoint{},
		&GetCatalogEndpoint{},
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Fallback bool   `json:"fallback"`
}

// writeError writes a JSON error response. Fallback is reported true so
// callers know no generated prompt is available from this call.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: msg, Fallback: true})
}
