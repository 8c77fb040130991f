package endpoints

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/spf13/cobra"

	"github.com/copydrive/copydrive/internal/api"
	"github.com/copydrive/copydrive/internal/catalog"
)

// CatalogsResponse lists every descriptor catalog and its codes.
type CatalogsResponse struct {
	Catalogs map[string][]string `json:"catalogs"`
}

// CatalogResponse holds one catalog's code to instruction mapping.
type CatalogResponse struct {
	Name    string            `json:"name"`
	Entries map[string]string `json:"entries"`
}

// ListCatalogsEndpoint handles GET /v1/catalogs.
type ListCatalogsEndpoint struct{}

func (e *ListCatalogsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/v1/catalogs", e.handler
}

func (e *ListCatalogsEndpoint) RequiresAuth() bool { return false }

func (e *ListCatalogsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := CatalogsResponse{Catalogs: make(map[string][]string)}
	for _, name := range catalog.Names() {
		entries := catalog.ByName(name)
		codes := make([]string, 0, len(entries))
		for code := range entries {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		resp.Catalogs[name] = codes
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *ListCatalogsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "catalogs",
		Short: "List descriptor catalogs and their codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL(), "")
			var resp CatalogsResponse
			if err := client.Get(cmd.Context(), "/v1/catalogs", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// GetCatalogEndpoint handles GET /v1/catalogs/{name}.
type GetCatalogEndpoint struct{}

func (e *GetCatalogEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/v1/catalogs/{name}", e.handler
}

func (e *GetCatalogEndpoint) RequiresAuth() bool { return false }

func (e *GetCatalogEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	entries := catalog.ByName(name)
	if entries == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown catalog: %s", name))
		return
	}
	writeJSON(w, http.StatusOK, CatalogResponse{Name: name, Entries: entries})
}

func (e *GetCatalogEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog <name>",
		Short: "Show one catalog's codes and instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL(), "")
			var resp CatalogResponse
			if err := client.Get(cmd.Context(), "/v1/catalogs/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
