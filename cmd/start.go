package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"game-datastore/core/datastore"
	"game-datastore/core/loader"
	"game-datastore/core/logger"
	"game-datastore/core/middleware/auth"
	"game-datastore/core/middleware/rayid"
	"game-datastore/core/storage"

	"game-datastore/feature/export"
	"game-datastore/feature/records"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "game-datastore/docs/swagger"
)

// @title Game Datastore API
// @version 1.0
// @description CRUD access to the game server database.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the datastore server",
	Long:  `Connects to the database, synchronizes the registered schemas and starts the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		rt, err := bootstrap(ctx, nil)
		cancel()
		if err != nil {
			log.Fatalf("Failed to start datastore: %v", err)
		}
		defer rt.close()
		zap.ReplaceGlobals(rt.logger)

		cfg, logg, store := rt.cfg, rt.logger, rt.store

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// Storage is optional: without it the export feature stays disabled.
		var client storage.Client
		if c, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Storage client unavailable, exports disabled", zap.Error(err))
		} else {
			client = c
		}

		mgr := loader.NewManager(logg)
		mgr.Register(records.NewFeature(store, cfg.Server, logg))
		mgr.Register(export.NewFeature(store, client, cfg.Storage, logg))

		// RayID first so every later log line carries it
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
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/health", healthHandler(store))

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

// healthHandler reports whether the database answers a ping.
// @Summary Health
// @Description Ping the database.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "OK"
// @Failure 503 {object} map[string]string "Database unreachable"
// @Router /health [get]
func healthHandler(store *datastore.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
