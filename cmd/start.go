package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"collection-adapter/core/database"
	"collection-adapter/core/loader"
	"collection-adapter/core/logger"
	"collection-adapter/core/middleware/auth"
	"collection-adapter/core/middleware/rayid"
	"collection-adapter/core/storage"
	"collection-adapter/feature/scenario"
	"collection-adapter/feature/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "collection-adapter/docs/swagger"
)

// @title Collection Adapter API
// @version 1.0
// @description Reconciles ordered collections into pooled child components.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the collection adapter server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load configuration and logger
		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatal(err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Refresh history (optional)
		var history session.HistoryRepository = session.NoopHistory{}
		if cfg.Database.Enabled {
			if db, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed, history disabled", zap.Error(err))
			} else {
				repo := session.NewGormHistory(db)
				if err := repo.Migrate(); err != nil {
					logg.Warn("Refresh history schema check failed, history disabled", zap.Error(err))
				} else {
					history = repo
					logg.Info("Refresh history enabled", zap.String("database", cfg.Database.Name))
				}
			}
		}

		// 3. Scenario storage
		store, client, err := newScenarioStore(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create scenario store", zap.Error(err))
		}
		if client != nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
			if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				logg.Warn("Scenario bucket unavailable", zap.Error(err))
			}
			cancel()
		}

		// 4. Features
		sessions := session.NewService(cfg.Adapter, history, logg)
		runner := scenario.NewRunner(cfg.Adapter, logg)

		mgr := loader.NewManager(logg)
		if err := mgr.Register(session.NewFeature(sessions)); err != nil {
			logg.Fatal("Failed to register feature", zap.Error(err))
		}
		if err := mgr.Register(scenario.NewFeature(store, runner, logg)); err != nil {
			logg.Fatal("Failed to register feature", zap.Error(err))
		}

		// 5. Fiber app and middleware
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger documentation is public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Bool("auth", cfg.Server.AuthEnabled()),
				zap.Int("stash_size", cfg.Adapter.StashSize),
				zap.Int("pool_capacity", cfg.Adapter.PoolCapacity),
				zap.Bool("shared_pool", cfg.Adapter.SharedPool),
			)
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
