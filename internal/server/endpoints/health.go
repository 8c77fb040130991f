package endpoints

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/copydrive/copydrive/internal/api"
	"github.com/copydrive/copydrive/internal/svcctx"
	"github.com/copydrive/copydrive/version"
)

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthEndpoint handles GET /health.
type HealthEndpoint struct{}

func (e *HealthEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/health", e.handler
}

func (e *HealthEndpoint) RequiresAuth() bool { return false }

func (e *HealthEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (e *HealthEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL(), "")
			var resp HealthResponse
			if err := client.Get(cmd.Context(), "/health", &resp); err != nil {
				return err
			}
			fmt.Printf("Status: %s\n", resp.Status)
			return nil
		},
	}
}

// StatusResponse is the detailed status response.
type StatusResponse struct {
	Server    string        `json:"server"`
	Version   string        `json:"version"`
	Providers []string      `json:"providers"`
	Storage   StorageStatus `json:"storage"`
}

// StorageStatus shows persistence backend status.
type StorageStatus struct {
	Configured bool   `json:"configured"`
	Table      string `json:"table,omitempty"`
	Health     string `json:"health,omitempty"`
}

// StatusEndpoint handles GET /status.
type StatusEndpoint struct{}

func (e *StatusEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/status", e.handler
}

func (e *StatusEndpoint) RequiresAuth() bool { return false }

func (e *StatusEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Server:  "running",
		Version: version.GitRelease,
	}

	if registry := svcctx.RegistryFrom(r.Context()); registry != nil {
		resp.Providers = registry.ListLLM()
	}

	if st := svcctx.StoreFrom(r.Context()); st != nil {
		resp.Storage.Configured = true
		resp.Storage.Table = st.Table()
		if err := st.HealthCheck(r.Context()); err != nil {
			resp.Storage.Health = "unhealthy"
		} else {
			resp.Storage.Health = "healthy"
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *StatusEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get detailed server status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL(), "")
			var resp StatusResponse
			if err := client.Get(cmd.Context(), "/status", &resp); err != nil {
				return err
			}
			fmt.Printf("Server:  %s\n", resp.Server)
			fmt.Printf("Version: %s\n", resp.Version)
			fmt.Printf("Providers: %v\n", resp.Providers)
			fmt.Printf("Storage:\n")
			fmt.Printf("  Configured: %v\n", resp.Storage.Configured)
			if resp.Storage.Configured {
				fmt.Printf("  Table:  %s\n", resp.Storage.Table)
				fmt.Printf("  Health: %s\n", resp.Storage.Health)
			}
			return nil
		},
	}
}
