package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/teamhubhq/teamhub-api/internal/config"
	"github.com/teamhubhq/teamhub-api/internal/database"
	"github.com/teamhubhq/teamhub-api/internal/handlers"
	"github.com/teamhubhq/teamhub-api/internal/logging"
	"github.com/teamhubhq/teamhub-api/internal/middleware"
	"github.com/teamhubhq/teamhub-api/internal/repository"
	"github.com/teamhubhq/teamhub-api/internal/services"
	"github.com/teamhubhq/teamhub-api/internal/token"
)

func main() {
	// Load configuration (.env is optional)
	_ = godotenv.Load()
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Initialize logger
	logger := logging.Init(cfg.LogFile, cfg.GinMode != gin.ReleaseMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	tokens := token.NewManager(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokens)
	projectService := services.NewProjectService(projectRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "TeamHub API is running",
		})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/users", middleware.RequireAuth(tokens), authHandler.ListUsers)
	}

	// Project routes (protected)
	projects := r.Group("/projects")
	projects.Use(middleware.RequireAuth(tokens))
	{
		projects.POST("", projectHandler.Create)
		projects.GET("", projectHandler.List)
		projects.GET("/:projectId", projectHandler.Get)
		projects.PUT("/:projectId", projectHandler.Update)
		projects.DELETE("/:projectId", projectHandler.Delete)

		// Task routes, scoped to their owning project
		tasks := projects.Group("/:projectId/tasks")
		{
			tasks.POST("", taskHandler.Create)
			tasks.GET("", taskHandler.List)
			tasks.GET("/:taskId", taskHandler.Get)
			tasks.PATCH("/:taskId", taskHandler.Update)
			tasks.DELETE("/:taskId", taskHandler.Delete)
			tasks.PATCH("/:taskId/assign", taskHandler.Assign)
		}
	}

	// Start server
	logger.Infof("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
