package cli

import (
	"github.com/spf13/cobra"

	"photo-backend/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pool, err := db.InitDB(ctx, db.PoolConfig{
			ConnString:      cfg.ConnString(),
			MaxConns:        1,
			MaxConnLifetime: cfg.DBMaxConnLifetime,
			MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		})
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.Migrate(ctx, pool); err != nil {
			return err
		}
		appLogger.Info("migrations applied")
		return nil
	},
}
