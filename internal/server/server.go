// Package server contains the HTTP handlers for the application's API
// endpoints. Handlers only call repository operations; they never reach
// into storage directly.
package server

import (
	"context"
	"fmt"
	"time"

	"atelier/internal/config"
	"atelier/internal/middleware"
	"atelier/internal/repository"
	"atelier/internal/seed"
	"atelier/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	store          storage.Store
	promMiddleware *fiberprometheus.FiberPrometheus
	users          repository.UserRepository
	posts          repository.PostRepository
	communities    repository.CommunityRepository
	games          repository.GameRepository
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	store, err := OpenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage backend: %w", err)
	}

	s := &Server{
		config:         cfg,
		store:          store,
		promMiddleware: middleware.InitMetrics("atelier-api"),
		users:          repository.NewUserRepository(store),
		posts:          repository.NewPostRepository(store),
		communities:    repository.NewCommunityRepository(store),
		games:          repository.NewGameRepository(store),
	}

	seed.Defaults(context.Background(), s.communities, s.games)
	middleware.InitMiddleware(cfg)

	return s, nil
}

// OpenStore constructs the storage backend selected by configuration.
func OpenStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil
	case config.BackendFile:
		return storage.NewFileStore(cfg.DataDir)
	case config.BackendRedis:
		return storage.NewRedisStore(cfg.RedisURL)
	case config.BackendPostgres:
		return storage.NewPostgresStore(cfg.DatabaseDSN())
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(requestid.New())
	app.Use(middleware.StructuredLogger())
	app.Use(middleware.TracingMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.AllowedOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")

	api.Get("/", s.HealthCheck)

	auth := api.Group("/auth")
	auth.Post("/signup", s.Signup)
	auth.Post("/signin", s.Signin)
	auth.Post("/signout", middleware.AuthRequired, s.Signout)
	auth.Get("/me", middleware.AuthRequired, s.Me)

	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Put("/me", middleware.AuthRequired, s.UpdateProfile)

	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", middleware.AuthRequired, s.CreatePost)
	posts.Post("/:id/like", middleware.AuthRequired, s.ToggleLike)
	posts.Post("/:id/comments", middleware.AuthRequired, s.AddComment)

	communities := api.Group("/communities")
	communities.Get("/", s.GetCommunities)
	communities.Post("/", middleware.AuthRequired, s.CreateCommunity)
	communities.Post("/:id/join", middleware.AuthRequired, s.JoinCommunity)

	games := api.Group("/games")
	games.Get("/", s.GetGames)
	games.Post("/:id/play", s.PlayGame)
	games.Post("/:id/scores", middleware.AuthRequired, s.SubmitScore)
}

// HealthCheck handles GET /api/
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "atelier-api",
	})
}

// currentUserID returns the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok {
		return id
	}
	return ""
}

func (s *Server) generateToken(userID, username string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"iss":      "atelier-api",
		"exp":      now.Add(time.Hour * 24 * 7).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
