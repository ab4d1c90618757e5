package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ua-capabilities/core/config"
	"ua-capabilities/core/loader"
	"ua-capabilities/core/logger"
	"ua-capabilities/core/middleware/auth"
	"ua-capabilities/core/middleware/rayid"

	"ua-capabilities/feature/integrity"
	"ua-capabilities/feature/lookup"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "ua-capabilities/docs/swagger"
)

// @title User-Agent Capability API
// @version 1.0
// @description Classifies user-agent strings against a wildcard pattern dataset.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the capability server",
	Long:  `Loads the dataset, builds the pattern index and serves lookups over HTTP.`,
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

		// 3. Build Engine (fatal: no partial engine is ever served)
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		eng, src, err := buildEngine(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to initialize engine", zap.Error(err))
		}
		logg = logg.With(zap.String("dataset", src.Name()))

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           cfg.Server.ReadTimeout(),
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(lookup.NewFeature(eng, cfg.Lookup, logg))
		mgr.Register(integrity.NewFeature(eng, src, logg))

		// Middleware Registration
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth protects everything registered after it
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
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
