package main

import (
	"fmt"
	"net/http"
	"os"

	"farmstead/internal/config"
	"farmstead/internal/database"
	"farmstead/internal/handlers"
	"farmstead/internal/logger"
	"farmstead/internal/middleware"
	"farmstead/internal/services"
	"farmstead/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "farmstead/internal/docs" // Import swagger docs
)

// @title           Farmstead API
// @version         1.0
// @description     Farmstead is a farm record keeping application covering farmers, crops, plantings, finances, equipment, inventory, and weather.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	farmerService := services.NewFarmerService(db)
	cropService := services.NewCropService(db)
	financeService := services.NewFinanceService(db)
	equipmentService := services.NewEquipmentService(db)
	inventoryService := services.NewInventoryService(db)
	weatherService := services.NewWeatherService(db)

	// Bootstrap admin account on first run
	if err := userService.EnsureDefaultAdmin(appConfig.AdminUsername, appConfig.AdminEmail, appConfig.AdminPassword); err != nil {
		return fmt.Errorf("failed to ensure default admin: %w", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	farmerHandler := handlers.NewFarmerHandler(farmerService)
	cropHandler := handlers.NewCropHandler(cropService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	weatherHandler := handlers.NewWeatherHandler(weatherService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Farmer routes
	farmers := protected.Group("/farmers")
	farmers.POST("", farmerHandler.CreateFarmer)
	farmers.GET("", farmerHandler.GetAllFarmers)
	farmers.GET("/search", farmerHandler.SearchFarmers)
	farmers.GET("/:id", farmerHandler.GetFarmerByID)
	farmers.PUT("/:id", farmerHandler.UpdateFarmer)
	farmers.DELETE("/:id", farmerHandler.DeleteFarmer)
	farmers.GET("/:id/statistics", farmerHandler.GetFarmerStatistics)

	// Crop routes
	crops := protected.Group("/crops")
	crops.POST("", cropHandler.CreateCrop)
	crops.GET("", cropHandler.GetAllCrops)
	crops.GET("/statistics", cropHandler.GetCropStatistics)
	crops.GET("/:id", cropHandler.GetCropByID)

	// Planting routes
	plantings := protected.Group("/plantings")
	plantings.POST("", cropHandler.CreatePlanting)
	plantings.GET("", cropHandler.GetAllPlantings)
	plantings.GET("/harvest-schedule", cropHandler.GetHarvestSchedule)
	plantings.GET("/:id", cropHandler.GetPlantingByID)
	plantings.PUT("/:id/status", cropHandler.UpdatePlantingStatus)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", financeHandler.CreateTransaction)
	transactions.GET("", financeHandler.GetTransactions)
	transactions.PUT("/:id", financeHandler.UpdateTransaction)
	transactions.DELETE("/:id", financeHandler.DeleteTransaction)

	// Financial report routes
	finance := protected.Group("/finance")
	finance.GET("/summary", financeHandler.GetFinancialSummary)
	finance.GET("/categories", financeHandler.GetCategoryBreakdown)
	finance.GET("/monthly", financeHandler.GetMonthlySummary)
	finance.GET("/top-expenses", financeHandler.GetTopExpenses)
	finance.GET("/top-income", financeHandler.GetTopIncome)

	// Equipment routes
	equipment := protected.Group("/equipment")
	equipment.POST("", equipmentHandler.CreateEquipment)
	equipment.GET("", equipmentHandler.GetEquipment)
	equipment.GET("/:id", equipmentHandler.GetEquipmentByID)
	equipment.PUT("/:id/status", equipmentHandler.UpdateEquipmentStatus)
	equipment.DELETE("/:id", equipmentHandler.DeleteEquipment)

	// Inventory routes
	inventory := protected.Group("/inventory")
	inventory.POST("", inventoryHandler.CreateItem)
	inventory.GET("", inventoryHandler.GetItems)
	inventory.GET("/:id", inventoryHandler.GetItemByID)
	inventory.PUT("/:id", inventoryHandler.UpdateItem)
	inventory.DELETE("/:id", inventoryHandler.DeleteItem)

	// Weather routes
	weather := protected.Group("/weather")
	weather.POST("", weatherHandler.RecordObservation)
	weather.GET("", weatherHandler.GetObservations)
	weather.DELETE("/:id", weatherHandler.DeleteObservation)

	log.Infof("Starting Farmstead backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
