package main

import (
	"log"

	"daily-diet-be/internal/config"
	"daily-diet-be/internal/controllers"
	"daily-diet-be/internal/database"
	"daily-diet-be/internal/middleware"
	"daily-diet-be/internal/repository"
	"daily-diet-be/internal/service"

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
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	mealRepo := repository.NewMealRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	mealService := service.NewMealService(mealRepo, userRepo)

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
		users.GET("", middleware.RequireSession(), userController.List)
		users.POST("", signupRateLimiter.LimitMiddleware(), userController.Create)
	}

	// Meal routes - all require a session cookie
	meals := router.Group("/meals")
	meals.Use(generalRateLimiter.LimitMiddleware(), middleware.RequireSession())
	{
		meals.GET("", mealController.List)
		meals.GET("/:id", middleware.RequireUUIDParam("id"), mealController.Get)
		meals.POST("", mealController.Create)
		meals.PUT("/:id", middleware.RequireUUIDParam("id"), mealController.Update)
		meals.DELETE("/:id", middleware.RequireUUIDParam("id"), mealController.Delete)
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
