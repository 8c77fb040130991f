package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/copydrive/copydrive/internal/config"
	"github.com/copydrive/copydrive/internal/home"
	"github.com/copydrive/copydrive/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the CopyDrive server",
	Long: `Start the CopyDrive HTTP server.

The server provides:
  - /health            - Basic server health check
  - /status            - Detailed status (providers, storage)
  - /v1/system-prompt  - System prompt generation
  - /v1/catalogs       - Descriptor catalogs

Configuration is hot-reloaded when the config file changes.

Examples:
  copydrive serve                    # Start on default port 8080
  copydrive serve --port 3000        # Start on custom port
  copydrive serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		// Load configuration with hot reload
		cfgMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfgMgr.WatchConfig()

		host := serveHost
		port := servePort
		if cfg := cfgMgr.Get(); cfg != nil {
			if host == "" {
				host = cfg.Server.Host
			}
			if port == "" {
				port = cfg.Server.Port
			}
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			ConfigManager: cfgMgr,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from config)")

	rootCmd.AddCommand(serveCmd)
}
