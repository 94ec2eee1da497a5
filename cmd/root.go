package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/andrewpaige1/panelverse-api/config"
	"github.com/andrewpaige1/panelverse-api/services"
	"github.com/andrewpaige1/panelverse-api/storage"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "panelverse",
	Short:         "Backend for branching comic panel sets",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.AddCommand(serveCmd, migrateCmd, sweepCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads the config and opens the stores every subcommand needs.
func setup(ctx context.Context, migrate bool) (*config.Config, *gorm.DB, *services.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := config.Open(cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	if migrate {
		if err := config.Migrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	images, err := storage.NewImageStoreFromConfig(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create image store: %w", err)
	}

	return cfg, db, services.NewService(db, images), nil
}
