package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/RuanParreira/arquitetura-cebola/internal/api/handler"
	"github.com/RuanParreira/arquitetura-cebola/internal/api/middleware"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/service"
	"github.com/RuanParreira/arquitetura-cebola/internal/infrastructure/db"
)

// RouterConfig carries the settings the HTTP layer needs beyond its storage
// gateway.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(gw ports.Gateway, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("gestao"))

	// --- Dependencies ---
	userRepo := db.NewUserRepository(gw)
	projectRepo := db.NewProjectRepository(gw)
	taskRepo := db.NewTaskRepository(gw)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo, userRepo, log)
	taskService := service.NewTaskService(taskRepo, projectRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	healthHandler := handler.NewHealthHandler(gw)

	authenticated := middleware.Auth(authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/verify", authHandler.Verify)

	// --- User routes (admin-managed, single read open to any token) ---
	users := e.Group("/api/users", authenticated)
	users.GET("", userHandler.List, adminOnly)
	users.POST("", userHandler.Create, adminOnly)
	users.GET("/:id", userHandler.GetByID)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Project routes (writes authorized in the service) ---
	projects := e.Group("/api/projects", authenticated)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.GetByID)
	projects.POST("", projectHandler.Create)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)

	// --- Task routes ---
	tasks := e.Group("/api/tasks", authenticated)
	tasks.GET("", taskHandler.List)
	tasks.GET("/my-tasks", taskHandler.MyTasks)
	tasks.GET("/project/:projectId", taskHandler.ListByProject)
	tasks.GET("/:id", taskHandler.GetByID)
	tasks.POST("", taskHandler.Create)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/api/health", healthHandler.Liveness)
	e.GET("/api/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
