package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/ArowuTest/engage-crm/internal/app"
	"github.com/ArowuTest/engage-crm/internal/config"
	"github.com/ArowuTest/engage-crm/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "crmctl",
	Short: "Administrative tasks for the Engage CRM backend",
	Long: `crmctl runs maintenance tasks against the configured CRM store.

It reads the same configuration as the API server: config.yaml, a .env file
and environment variables such as STORAGE_DRIVER and MONGODB_URI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and runs it
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory containing config.yaml (default: . and ./config)")
}

// openServices loads configuration and opens the stores behind the services
func openServices(ctx context.Context) (*app.Services, *app.Stores, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	var paths []string
	if configDir != "" {
		paths = append(paths, configDir)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, nil, err
	}
	logging.Setup(cfg.Log.Level, "text")

	stores, err := app.OpenStores(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return app.NewServices(cfg, stores, app.NewDeliveryPolicy(cfg.Delivery)), stores, nil
}
