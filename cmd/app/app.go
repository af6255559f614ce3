package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dharma-pro/temple-booking/internal/config"
	"github.com/dharma-pro/temple-booking/internal/db"
	"github.com/dharma-pro/temple-booking/internal/logger"
)

var configPath string

func Execute() error {
	rootCmd := &cobra.Command{
		Use:           "temple-booking",
		Short:         "DHARMA temple visit booking backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./cmd/app/config.yml", "path to the config file")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(workerCmd())

	// Running the binary without a subcommand serves the API.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, true)
	}

	return rootCmd.Execute()
}

func setup() (*config.AppConfig, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return nil, fmt.Errorf("failed to initialize logger -> %w", err)
	}

	return conf, nil
}

func openDatabase(conf *config.AppConfig) (*gorm.DB, error) {
	var (
		postgresDB *gorm.DB
		err        error
	)

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database -> %w", err)
	}

	zap.L().Info("connected to postgres")

	return postgresDB, nil
}
