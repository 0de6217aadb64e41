package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-service/core/bootstrap"
	"user-service/core/config"
	"user-service/core/database"
	"user-service/core/loader"
	"user-service/core/logger"
	"user-service/core/middleware/auth"
	"user-service/core/middleware/errorhandler"
	"user-service/core/middleware/rayid"
	"user-service/feature/products"
	"user-service/feature/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "user-service/docs/swagger"
)

// @title User Service API
// @version 1.0
// @description CRUD API for users plus the products placeholder route.
// @host localhost:8000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the user service",
	Long: `Connects to the database, seeds sample users outside production,
mounts the routes and serves HTTP until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, cfg, logg)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

// runServer drives the bootstrap sequence and blocks until ctx is done or startup fails.
func runServer(ctx context.Context, cfg *config.Config, logg *zap.Logger) error {
	var db *gorm.DB
	app := newApp(logg)

	seq := bootstrap.New(bootstrap.Config{
		EnableSeeding: cfg.Server.SeedingEnabled(),
		Addr:          cfg.Server.Addr(),
	}, bootstrap.Stages{
		Connect: func(ctx context.Context) error {
			conn, err := connectDatabase(cfg.Database)
			if err != nil {
				return err
			}
			db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
			return nil
		},
		Seed: func(ctx context.Context) error {
			_, err := users.NewSeeder(users.NewRepository(db), logg).InsertSampleUsers(ctx)
			return err
		},
		Mount: func() error {
			return mountRoutes(app, db, cfg, logg)
		},
		Listen: func(addr string) error {
			if ctx.Err() != nil {
				return nil
			}
			return app.Listen(addr)
		},
	}, logg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- seq.Run(ctx)
	}()

	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
		logg.Info("Shutting down server...")
		runErr = shutdown(app, errCh)
	}

	if err := database.Close(db); err != nil {
		logg.Warn("Failed to close database", zap.Error(err))
	}
	return runErr
}

// shutdown stops the server and waits for the sequence to return. Shutdown is
// repeated because the listener may not have been bound yet on the first attempt.
func shutdown(app *fiber.App, errCh <-chan error) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		_ = app.Shutdown()
		select {
		case err := <-errCh:
			return err
		case <-ticker.C:
		}
	}
}

// connectDatabase opens the database and migrates the users schema.
func connectDatabase(cfg database.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := users.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}

func newApp(logg *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
		ErrorHandler:          errorhandler.New(logg),
	})
}

// mountRoutes installs middleware, features and finally the catch-all that hands
// unmatched requests to the error handler.
func mountRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logg *zap.Logger) error {
	// RayID must be first to trace everything
	app.Use(rayid.New())
	app.Use(fiberrecover.New())
	app.Use(cors.New())
	app.Use(logger.Middleware(logg))

	// Swagger Documentation (Public)
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	mgr := loader.NewManager()
	mgr.Register(users.NewFeature(db, logg))
	mgr.Register(products.NewFeature())

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return err
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	// Error handling comes last so it sees everything mounted above.
	app.Use(errorhandler.NotFound)
	return nil
}
