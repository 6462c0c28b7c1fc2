package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"token-bridge/core/cache"
	"token-bridge/core/config"
	"token-bridge/core/database"
	"token-bridge/core/gitrepo"
	"token-bridge/core/loader"
	"token-bridge/core/logger"
	"token-bridge/core/middleware/auth"
	"token-bridge/core/middleware/rayid"
	"token-bridge/core/storage"

	"token-bridge/feature/compare"
	"token-bridge/feature/integrity"
	"token-bridge/feature/palette"
	"token-bridge/feature/snapshots"
	"token-bridge/feature/tokens"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "token-bridge/docs/swagger"
)

// @title Token Bridge API
// @version 1.0
// @description API for generating palettes, flattening design tokens and comparing them with design-tool variables.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the token bridge server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional, backs snapshot history)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to snapshot database", zap.String("driver", cfg.Database.Driver))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		if cfg.Storage.CreateBucket {
			created, err := storage.EnsureBucket(context.Background(), store, cfg.Storage.Bucket, cfg.Storage.Region)
			if err != nil {
				logg.Warn("Bucket check failed", zap.Error(err))
			} else if created {
				logg.Info("Created token bucket", zap.String("bucket", cfg.Storage.Bucket))
			}
		}

		// 5. Initialize Cache
		cacheStore, err := cache.New(cfg.Cache)
		if err != nil {
			logg.Fatal("Failed to create cache store", zap.Error(err))
		}
		if cacheStore != nil {
			defer cacheStore.Close()
		}
		results := cache.NewLoader(cacheStore, cfg.Cache.TTL())
		logg.Info("Result cache ready", zap.String("driver", cfg.Cache.Driver), zap.Bool("enabled", results.Enabled()))

		// 6. Open Token Repository (Optional)
		var repo *gitrepo.Repository
		if cfg.Repo.Path != "" {
			if repo, err = gitrepo.Open(cfg.Repo.Path); err != nil {
				logg.Warn("Token repository unavailable", zap.String("path", cfg.Repo.Path), zap.Error(err))
				repo = nil
			}
		}

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 8. Register Features
		mgr := loader.NewManager(logg)

		prefix := cfg.Engine.DocumentPrefix
		tokenFeature := tokens.NewFeature(store, cfg.Storage.Bucket, prefix, repo, cfg.Repo, logg)
		snapshotFeature := snapshots.NewFeature(db, logg)

		mgr.Register(palette.NewFeature(store, cfg.Storage.Bucket, prefix, cfg.Engine.Harmony(), results, logg))
		mgr.Register(tokenFeature)
		mgr.Register(snapshotFeature)
		mgr.Register(compare.NewFeature(snapshotFeature.Service(), tokenFeature.Service(), results, compare.Options{
			DefaultMode: cfg.Engine.DefaultMode,
			Strict:      cfg.Engine.StrictDuplicates,
		}, logg))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, prefix, db, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with Zap + RayID
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

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		if cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))
		} else {
			logg.Warn("API key not set, requests are not authenticated")
		}

		// 9. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 11. Graceful Shutdown
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
