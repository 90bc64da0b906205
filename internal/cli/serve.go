package cli

import (
	"github.com/spf13/cobra"

	"photo-backend/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Run(cfg); err != nil {
			appLogger.Error("server exited", "error", err)
			return err
		}
		return nil
	},
}
