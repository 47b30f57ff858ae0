// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"repairhub/internal/cache"
	"repairhub/internal/config"
	"repairhub/internal/database"
	"repairhub/internal/middleware"
	"repairhub/internal/models"
	"repairhub/internal/repository"
	"repairhub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	db     *gorm.DB
	redis  *redis.Client

	userRepo    repository.UserRepository
	postRepo    repository.RepairPostRepository
	guideRepo   repository.GuideRepository
	commentRepo repository.CommentRepository
	badgeRepo   repository.BadgeRepository

	authService    *service.AuthService
	postService    *service.PostService
	guideService   *service.GuideService
	commentService *service.CommentService
	badgeService   *service.BadgeService
	userService    *service.UserService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	server := &Server{
		config:      cfg,
		db:          db,
		redis:       redisClient,
		userRepo:    repository.NewUserRepository(db),
		postRepo:    repository.NewRepairPostRepository(db),
		guideRepo:   repository.NewGuideRepository(db),
		commentRepo: repository.NewCommentRepository(db),
		badgeRepo:   repository.NewBadgeRepository(db),
	}

	server.authService = service.NewAuthService(server.userRepo, nil)
	server.badgeService = service.NewBadgeService(
		server.badgeRepo, server.postRepo, server.commentRepo, server.userRepo, nil)
	server.postService = service.NewPostService(
		server.postRepo, server.userRepo, server.evaluateBadges)
	server.guideService = service.NewGuideService(server.guideRepo, server.userRepo)
	server.commentService = service.NewCommentService(
		server.commentRepo, server.postRepo, server.userRepo, server.evaluateBadges, nil)
	server.userService = service.NewUserService(server.userRepo, server.badgeRepo)

	return server
}

// SeedDefaults creates the built-in badge catalog. Called explicitly from the
// bootstrap layer (cmd) so tests stay in control of seeding.
func (s *Server) SeedDefaults(ctx context.Context) error {
	return s.badgeService.SeedDefaults(ctx)
}

// evaluateBadges re-checks award thresholds after content creation.
// Best-effort: a failed award must never fail the request that triggered it.
func (s *Server) evaluateBadges(ctx context.Context, userID uint) {
	if err := s.badgeService.EvaluateForUser(ctx, userID); err != nil {
		middleware.Logger.WarnContext(ctx, "badge evaluation failed",
			"user_id", userID, "error", err.Error())
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Propagate the request ID into the request context for logging
	app.Use(middleware.ContextMiddleware())

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:3000,http://127.0.0.1:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.Logout)
	auth.Get("/me", s.AuthRequired(), s.Me)
	auth.Put("/me", s.AuthRequired(), s.UpdateMyProfile)

	// User routes
	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Get("/:id/badges", s.GetUserBadges)
	users.Get("/:id", s.GetUserProfile)

	// Badge catalog
	api.Get("/badges", s.GetBadges)

	// Repair posts and their comment threads. Reads are public; mutations
	// require a resolvable token.
	posts := api.Group("/repair-posts")
	posts.Get("/", s.GetRepairPosts)
	posts.Get("/:id/comments", s.GetComments)
	posts.Get("/:id", s.GetRepairPost)
	posts.Post("/", s.AuthRequired(), s.CreateRepairPost)
	posts.Put("/:id", s.AuthRequired(), s.UpdateRepairPost)
	posts.Delete("/:id", s.AuthRequired(), s.DeleteRepairPost)
	posts.Post("/:id/comments", s.AuthRequired(), s.CreateComment)
	posts.Put("/:id/comments/:commentId", s.AuthRequired(), s.UpdateComment)
	posts.Delete("/:id/comments/:commentId", s.AuthRequired(), s.DeleteComment)

	// Guides
	guides := api.Group("/guides")
	guides.Get("/", s.GetGuides)
	guides.Get("/:id", s.GetGuide)
	guides.Post("/", s.AuthRequired(), s.CreateGuide)
	guides.Put("/:id", s.AuthRequired(), s.UpdateGuide)
	guides.Delete("/:id", s.AuthRequired(), s.DeleteGuide)
}

// AuthRequired returns middleware that resolves the bearer token to a user,
// stores the user and its ID in locals, and tags the request context so log
// lines carry user_id. Read endpoints never mount this.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewInvalidTokenError())
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewInvalidTokenError())
		}

		user, err := s.authService.Resolve(c.Context(), parts[1])
		if err != nil {
			return respondServiceError(c, err)
		}

		c.Locals("userID", user.ID)
		c.Locals("authUser", user)
		c.SetUserContext(context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID))
		return c.Next()
	}
}

// HealthCheck reports liveness plus dependency status.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Redis is optional; absence only disables rate limiting.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown releases the server's database and Redis resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			if cerr := sqlDB.Close(); cerr != nil {
				middleware.Logger.WarnContext(ctx, "error closing sql DB", "error", cerr.Error())
			}
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.WarnContext(ctx, "error closing redis", "error", rerr.Error())
		}
	}

	return nil
}
