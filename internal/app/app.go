package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"photo-backend/internal/config"
	"photo-backend/internal/db"
	"photo-backend/internal/handlers"
	"photo-backend/internal/repository"
	"photo-backend/internal/services"
)

// Deps are the collaborators the HTTP server is built from
type Deps struct {
	Users          services.UserStore
	Photos         services.PhotoStore
	Tokens         *services.TokenManager
	BcryptCost     int
	AllowedOrigins []string
	// AccessLog disables the per-request access log when false.
	AccessLog      bool
}

// NewServer wires services, middleware and routes into a Fiber app.
func NewServer(d Deps) *fiber.App {
	userService := services.NewUserService(d.Users, d.Tokens, d.BcryptCost)
	photoService := services.NewPhotoService(d.Photos)

	app := fiber.New(fiber.Config{
		AppName:               "photo-backend",
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if d.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(d.AllowedOrigins)))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Public Routes
	users := app.Group("/users")
	users.Post("/register", handlers.RegisterHandler(userService))
	users.Post("/login", handlers.LoginHandler(userService))

	// Protected Routes
	photos := app.Group("/photos", handlers.AuthMiddleware(userService))
	photos.Get("/", handlers.ListPhotosHandler(photoService))
	photos.Post("/", handlers.CreatePhotoHandler(photoService))
	photos.Get("/:id", handlers.GetPhotoHandler(photoService))

	return app
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.ConfigDefault
	cfg.AllowHeaders = "Origin, Content-Type, Accept, Authorization"
	if len(origins) > 0 {
		cfg.AllowOrigins = strings.Join(origins, ",")
	}
	return cfg
}

// Run connects to PostgreSQL, serves HTTP and blocks until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.InitDB(ctx, db.PoolConfig{
		ConnString:      cfg.ConnString(),
		MaxConns:        cfg.DBMaxConnections,
		MinConns:        cfg.DBMinConnections,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, pool); err != nil {
			return err
		}
		slog.Info("migrations applied")
	}

	orm, err := db.OpenORM(pool, cfg.LogLevel == "debug")
	if err != nil {
		return err
	}

	app := NewServer(Deps{
		Users:          repository.NewUserRepository(orm),
		Photos:         repository.NewPhotoRepository(orm),
		Tokens:         services.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		BcryptCost:     cfg.BcryptCost,
		AllowedOrigins: cfg.AllowedOrigins,
		AccessLog:      true,
	})

	// Start Server
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr(), "environment", cfg.Environment)
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful Shutdown
	slog.Info("gracefully shutting down", "timeout", cfg.ShutdownTimeout)
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server shutdown complete")
	return nil
}
