package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"page-server/core/config"
	"page-server/core/loader"
	"page-server/core/logger"
	"page-server/core/render"
	"page-server/core/server"
	"page-server/core/storage"
	"page-server/feature/api"
	"page-server/feature/pages"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the page server",
	Long:  `Prepares the page renderer, registers the routes and serves HTTP until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		cfg.Log.Dir = logger.ResolveDir(cfg.Log.Dir)
		logg, closeLogs, err := logger.New(&cfg.Log, cfg.IsDevelopment())
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer closeLogs()
		zap.ReplaceGlobals(logg)

		// 3. Asset source for the renderer
		var assets render.Assets
		if cfg.Render.Assets == render.AssetsStorage {
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			assets = render.NewStorageAssets(store, cfg.Storage.Bucket, cfg.Render.AssetPrefix)
		}
		engine := render.New(cfg.Render, cfg.IsDevelopment(), assets, logg)

		// 4. Register Features, order matters: /api before the catch-all
		mgr := loader.NewManager()
		mgr.Register(api.NewFeature())
		mgr.Register(pages.NewFeature(engine))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 5. Prepare the renderer, then build the pipeline
		d := server.New(cfg.Server, logg, mgr)
		if err := d.Prepare(ctx); err != nil {
			logg.Fatal("Failed to prepare rendering engine", zap.Error(err))
		}

		// 6. Serve until interrupted
		if err := d.Serve(ctx); err != nil {
			logg.Fatal("Server failed to start", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
