package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"

	"recipebox/internal/config"
	"recipebox/internal/handlers"
	"recipebox/internal/metrics"
	"recipebox/internal/middleware"
	"recipebox/internal/models"
	"recipebox/internal/repositories"
	"recipebox/internal/services"
	"recipebox/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	ctx := context.Background()

	// --- Recipe storage ---
	docs, closeDocs, err := openDocumentStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s recipe storage: %v", cfg.Backend, err)
	}
	defer func() {
		if err := closeDocs(); err != nil {
			log.Printf("Error closing recipe storage: %v", err)
		}
	}()

	store := services.NewRecipeStore(docs, models.SampleRecipes())
	if err := store.Load(ctx); err != nil {
		log.Fatalf("Failed to load recipes: %v", err)
	}

	// --- Services ---
	passwordHash, err := services.HashPassword(cfg.OwnerPassword)
	if err != nil {
		log.Fatalf("Failed to prepare owner credentials: %v", err)
	}
	authService := services.NewAuthService(cfg.OwnerUsername, passwordHash, cfg.JWTSecret)

	recorder := metrics.NewRecorder()
	recorder.Attach(store)

	// --- RabbitMQ (optional) ---
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		store.Subscribe(func(e services.Event) {
			if err := mqClient.PublishRecipeEvent(e); err != nil {
				log.Printf("Failed to publish %s event: %v", e.Kind, err)
			}
		})
		if err := mqClient.ConsumeRecipeEvents(rabbitmq.HandleRecipeMessage); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Println("RABBITMQ_URL not set, recipe events are not published")
	}

	app := NewApp(store, authService, recorder)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s with %s storage", cfg.AppPort, cfg.Backend)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// NewApp wires the HTTP routes over an already loaded store.
func NewApp(store *services.RecipeStore, authService *services.AuthService, recorder *metrics.Recorder) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "recipebox"})
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"recipes": store.Len(),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))

	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)

	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	handlers.NewRecipeHandler(store).RegisterRoutes(protectedRoutes)

	return app
}

// openDocumentStore builds the storage backend named in cfg. The returned
// func releases its connections.
func openDocumentStore(ctx context.Context, cfg config.Config) (repositories.DocumentStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendFile:
		return repositories.NewFileDocumentStore(cfg.RecipesFile), noop, nil

	case config.BackendMemory:
		return repositories.NewMemoryDocumentStore(), noop, nil

	case config.BackendSQLite, config.BackendPostgres:
		db, err := repositories.OpenDatabase(cfg.Backend, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		docs, err := repositories.NewGORMDocumentStore(db, cfg.DocumentKey)
		if err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		return docs, sqlDB.Close, nil

	case config.BackendS3:
		docs, err := repositories.NewS3DocumentStore(ctx, repositories.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Key:       cfg.DocumentKey,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
		if err != nil {
			return nil, nil, err
		}
		return docs, noop, nil

	case config.BackendRedis:
		client, err := repositories.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewRedisDocumentStore(client, cfg.DocumentKey), client.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}
