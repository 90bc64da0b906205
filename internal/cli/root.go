// Package cli holds the photo-backend command tree.
package cli

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"photo-backend/internal/config"
	"photo-backend/internal/logger"
)

var (
	cfg       *config.Config
	appLogger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:               "photo-backend",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "Photo sharing REST API",
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Printf("failed to load configuration: %v", err)
			return err
		}

		appLogger = logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
}
