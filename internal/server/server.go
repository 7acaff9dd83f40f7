// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"time"

	"github.com/shermanburwell3/social-media-api/internal/config"
	"github.com/shermanburwell3/social-media-api/internal/database"
	"github.com/shermanburwell3/social-media-api/internal/middleware"
	"github.com/shermanburwell3/social-media-api/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// storeTimeout bounds every store operation issued from a handler.
const storeTimeout = 5 * time.Second

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *mongo.Database
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	thoughtRepo    repository.ThoughtRepository
}

// NewServer creates a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database
// handle. Use this in tests or when a bootstrap layer establishes the
// connection itself.
func NewServerWithDeps(cfg *config.Config, db *mongo.Database) *Server {
	return &Server{
		config:         cfg,
		db:             db,
		promMiddleware: middleware.InitMetrics("social-media-api"),
		userRepo:       repository.NewUserRepository(db),
		thoughtRepo:    repository.NewThoughtRepository(db),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into the logger
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := ""
	if s.config != nil {
		origins = s.config.AllowedOrigins
	}
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")

	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Post("/", s.CreateUser)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)
	users.Post("/:userId/friends/:friendId", s.AddFriend)
	users.Delete("/:userId/friends/:friendId", s.RemoveFriend)

	thoughts := api.Group("/thoughts")
	thoughts.Get("/", s.GetThoughts)
	thoughts.Post("/", s.CreateThought)
	thoughts.Get("/:id", s.GetThought)
	thoughts.Put("/:id", s.UpdateThought)
	thoughts.Delete("/:id", s.DeleteThought)
	thoughts.Post("/:thoughtId/reactions", s.AddReaction)
	thoughts.Delete("/:thoughtId/reactions/:reactionId", s.RemoveReaction)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	return database.Disconnect(ctx, s.db)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	dbStatus := "healthy"
	status := fiber.StatusOK
	if s.db == nil {
		dbStatus = "unhealthy"
		status = fiber.StatusServiceUnavailable
	} else if err := s.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		dbStatus = "unhealthy"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   dbStatus,
		"database": dbStatus,
	})
}
