package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"shopapi/internal/config"
	"shopapi/internal/database"
	"shopapi/internal/handlers"
	applog "shopapi/internal/logger"
	"shopapi/internal/middleware"
	"shopapi/internal/repositories"
	"shopapi/internal/services"
	"shopapi/pkg/rabbitmq"
)

const apiVersion = "1.0.0"

// pinger reports whether the storage backend is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

// appDeps are the collaborators the HTTP app is built from.
type appDeps struct {
	products  repositories.ProductRepository
	users     repositories.UserRepository
	publisher services.EventPublisher
	storage   pinger // nil for the in-memory driver
	// corsOrigins is a comma-separated list of extra allowed origins.
	corsOrigins string
}

func main() {
	// --- Configuration ---
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	applog.Setup(cfg.LogLevel)

	deps := appDeps{corsOrigins: cfg.CORSAllowedOrigins}

	// --- Initialize Storage ---
	var mongoDB *database.Mongo
	switch cfg.Storage {
	case config.DriverMemory:
		slog.Warn("using in-memory storage; data is lost on restart")
		deps.products = repositories.NewMemoryProductRepository()
		deps.users = repositories.NewMemoryUserRepository()
	default:
		mongoDB, err = database.Connect(context.Background(), cfg.Mongo)
		if err != nil {
			slog.Error("failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		deps.products = repositories.NewMongoProductRepository(mongoDB.Collection(repositories.ProductsCollection))
		deps.users = repositories.NewMongoUserRepository(mongoDB.Collection(repositories.UsersCollection))
		deps.storage = mongoDB
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQ.URL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Exchange: cfg.RabbitMQ.Exchange})
		if err != nil {
			slog.Error("failed to initialize RabbitMQ client", "error", err)
			os.Exit(1)
		}
		deps.publisher = mqClient
	}

	app := newApp(deps)

	// --- Start HTTP Server ---
	addr := cfg.Addr()
	go func() {
		slog.Info("starting server", "addr", addr, "storage", cfg.Storage, "version", apiVersion)
		if err := app.Listen(addr); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("error during fiber shutdown", "error", err)
	}
	if mqClient != nil {
		if err := mqClient.Close(); err != nil {
			slog.Error("error closing RabbitMQ client", "error", err)
		}
	}
	if mongoDB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoDB.Close(ctx); err != nil {
			slog.Error("error closing MongoDB connection", "error", err)
		}
	}
	slog.Info("server gracefully stopped")
}

// newApp builds the fiber app with middleware, the resource routes and the
// fallback handlers.
func newApp(deps appDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "shopapi " + apiVersion,
		ErrorHandler: middleware.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(deps.corsOrigins))

	// --- Services and Handlers ---
	productHandler := handlers.NewProductHandler(services.NewProductService(deps.products, deps.publisher))
	userHandler := handlers.NewUserHandler(services.NewUserService(deps.users, deps.publisher))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API running",
			"version": apiVersion,
		})
	})
	app.Get("/health", healthHandler(deps.storage))

	// --- API Routes ---
	api := app.Group("/api")
	productHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)

	app.Use(middleware.NotFound)
	return app
}

func healthHandler(storage pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := "up"
		if storage == nil {
			status = "memory"
		} else {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := storage.Ping(ctx); err != nil {
				slog.Warn("health check failed", "error", err)
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status":  "unhealthy",
					"storage": "down",
					"time":    time.Now().Format(time.RFC3339),
				})
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"storage": status,
			"time":    time.Now().Format(time.RFC3339),
		})
	}
}
