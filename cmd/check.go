package cmd

import (
	"fmt"
	"log"

	"page-server/core/config"
	"page-server/core/logger"
	"page-server/core/render"
	"page-server/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the application root without serving",
	Long:  `Compiles every page and verifies the asset source (directory or storage bucket), then exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, closeLogs, err := logger.New(&logger.Config{Level: cfg.Log.Level}, true)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer closeLogs()

		var assets render.Assets
		if cfg.Render.Assets == render.AssetsStorage {
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			assets = render.NewStorageAssets(store, cfg.Storage.Bucket, cfg.Render.AssetPrefix)
		}

		// Always compile, even when the environment is development.
		engine := render.New(cfg.Render, false, assets, logg)
		if err := engine.Prepare(cmd.Context()); err != nil {
			return err
		}

		logg.Info("Application root is valid",
			zap.String("dir", cfg.Render.Dir),
			zap.String("assets", cfg.Render.Assets))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
