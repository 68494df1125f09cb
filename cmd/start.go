package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"objectfs/core/diagnostics"
	"objectfs/core/loader"
	"objectfs/core/logger"
	"objectfs/core/metrics"
	"objectfs/core/middleware/auth"
	"objectfs/core/middleware/rayid"
	"objectfs/core/readiness"
	"objectfs/feature/clientcheck"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "objectfs/docs/swagger"
)

// @title objectfs API
// @version 1.0
// @description Diagnostics and helpers for the object storage client.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the objectfs server",
	Long:  `Starts the HTTP server exposing the client readiness, diagnostics, presign and range routes.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger and object client
		cfg, logg, client, err := bootstrap(cmd.Context())
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		logg.Info("Object client created",
			zap.String("provider", cfg.Client.Provider),
			zap.Bool("available", client.CheckAvailability()),
		)

		// 2. Metrics
		reg := metrics.NewRegistry()
		m := metrics.New(reg)

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 4. Initialize Feature Loader
		checker := readiness.NewChecker(readiness.NewLogObserver(logg), m)
		reporter := diagnostics.NewReporter(diagnostics.WithRangeCheck(), diagnostics.WithRunObserver(m.ObserveDiagnostics))

		mgr := loader.NewManager()
		mgr.Register(clientcheck.NewFeature(clientcheck.NewService(client, checker, reporter, logg)))

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

		// Public routes
		if cfg.Server.Swagger {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}
		if cfg.Server.Metrics {
			app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
		}

		if cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		} else {
			logg.Warn("API key is not set, routes are not protected")
		}

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		for _, f := range mgr.Features() {
			logg.Info("Feature registered", zap.String("feature", f.Name()), zap.Bool("enabled", f.IsEnabled()))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
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
