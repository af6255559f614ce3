package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dharma-pro/temple-booking/internal/repository/dao"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := setup()
			if err != nil {
				return err
			}

			postgresDB, err := openDatabase(conf)
			if err != nil {
				return err
			}

			if err = dao.InitTables(postgresDB); err != nil {
				return fmt.Errorf("dao.InitTables -> %w", err)
			}

			zap.L().Info("schema is up to date")

			return nil
		},
	}
}
