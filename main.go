package main

import (
	"log"

	"dietlog-be/internal/cache"
	"dietlog-be/internal/config"
	"dietlog-be/internal/controllers"
	"dietlog-be/internal/database"
	"dietlog-be/internal/middleware"
	"dietlog-be/internal/repository"
	"dietlog-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	mealRepo := repository.NewMealRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	mealService := service.NewMealService(mealRepo, cacheClient)

	// Initialize controllers
	userController := controllers.NewUserController(userService)
	mealController := controllers.NewMealController(mealService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	signupRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitSignupRPS), cfg.RateLimitSignupBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// User routes
	users := router.Group("/users")
	users.Use(generalRateLimiter.LimitMiddleware())
	{
		// Signup with stricter rate limiting
		users.POST("/signup", signupRateLimiter.LimitMiddleware(), userController.Signup)

		// Diagnostic endpoint: lists every user row
		users.GET("/", userController.ListUsers)
	}

	// Meal routes - require a resolvable session cookie
	meals := router.Group("/meals")
	meals.Use(generalRateLimiter.LimitMiddleware())
	meals.Use(middleware.SessionAuth(userService))
	{
		meals.POST("/", mealController.Create)
		meals.GET("/", mealController.List)
		meals.GET("/metrics", mealController.Metrics)
		meals.GET("/:id", mealController.Get)
		meals.PUT("/:id", mealController.Update)
		meals.DELETE("/:id", mealController.Delete)
	}

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
