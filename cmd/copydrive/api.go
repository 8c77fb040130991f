package main

import (
	"github.com/spf13/cobra"

	"github.com/copydrive/copydrive/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running CopyDrive server via HTTP.

These commands require a running server (copydrive serve).
Use --server to specify a custom server URL.

Examples:
  copydrive api health                 # Check server health
  copydrive api catalogs               # List descriptor catalogs
  copydrive api generate -f req.json   # Generate a system prompt`,
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.GenerateEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ListCatalogsEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.GetCatalogEndpoint{}).Command(getServerURL))

	rootCmd.AddCommand(apiCmd)
}
