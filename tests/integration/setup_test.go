package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"farmstead/internal/handlers"
	"farmstead/internal/logger"
	"farmstead/internal/middleware"
	"farmstead/internal/models"
	"farmstead/internal/services"
	"farmstead/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Farmer{},
		&models.Crop{},
		&models.Planting{},
		&models.Equipment{},
		&models.InventoryItem{},
		&models.Transaction{},
		&models.WeatherRecord{},
		&models.User{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	farmerService := services.NewFarmerService(db)
	cropService := services.NewCropService(db)
	financeService := services.NewFinanceService(db)
	equipmentService := services.NewEquipmentService(db)
	inventoryService := services.NewInventoryService(db)
	weatherService := services.NewWeatherService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	farmerHandler := handlers.NewFarmerHandler(farmerService)
	cropHandler := handlers.NewCropHandler(cropService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	weatherHandler := handlers.NewWeatherHandler(weatherService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	farmers := protected.Group("/farmers")
	farmers.POST("", farmerHandler.CreateFarmer)
	farmers.GET("", farmerHandler.GetAllFarmers)
	farmers.GET("/search", farmerHandler.SearchFarmers)
	farmers.GET("/:id", farmerHandler.GetFarmerByID)
	farmers.PUT("/:id", farmerHandler.UpdateFarmer)
	farmers.DELETE("/:id", farmerHandler.DeleteFarmer)
	farmers.GET("/:id/statistics", farmerHandler.GetFarmerStatistics)

	crops := protected.Group("/crops")
	crops.POST("", cropHandler.CreateCrop)
	crops.GET("", cropHandler.GetAllCrops)
	crops.GET("/statistics", cropHandler.GetCropStatistics)
	crops.GET("/:id", cropHandler.GetCropByID)

	plantings := protected.Group("/plantings")
	plantings.POST("", cropHandler.CreatePlanting)
	plantings.GET("", cropHandler.GetAllPlantings)
	plantings.GET("/harvest-schedule", cropHandler.GetHarvestSchedule)
	plantings.GET("/:id", cropHandler.GetPlantingByID)
	plantings.PUT("/:id/status", cropHandler.UpdatePlantingStatus)

	transactions := protected.Group("/transactions")
	transactions.POST("", financeHandler.CreateTransaction)
	transactions.GET("", financeHandler.GetTransactions)
	transactions.PUT("/:id", financeHandler.UpdateTransaction)
	transactions.DELETE("/:id", financeHandler.DeleteTransaction)

	finance := protected.Group("/finance")
	finance.GET("/summary", financeHandler.GetFinancialSummary)
	finance.GET("/categories", financeHandler.GetCategoryBreakdown)
	finance.GET("/monthly", financeHandler.GetMonthlySummary)
	finance.GET("/top-expenses", financeHandler.GetTopExpenses)
	finance.GET("/top-income", financeHandler.GetTopIncome)

	equipment := protected.Group("/equipment")
	equipment.POST("", equipmentHandler.CreateEquipment)
	equipment.GET("", equipmentHandler.GetEquipment)
	equipment.GET("/:id", equipmentHandler.GetEquipmentByID)
	equipment.PUT("/:id/status", equipmentHandler.UpdateEquipmentStatus)
	equipment.DELETE("/:id", equipmentHandler.DeleteEquipment)

	inventory := protected.Group("/inventory")
	inventory.POST("", inventoryHandler.CreateItem)
	inventory.GET("", inventoryHandler.GetItems)
	inventory.GET("/:id", inventoryHandler.GetItemByID)
	inventory.PUT("/:id", inventoryHandler.UpdateItem)
	inventory.DELETE("/:id", inventoryHandler.DeleteItem)

	weather := protected.Group("/weather")
	weather.POST("", weatherHandler.RecordObservation)
	weather.GET("", weatherHandler.GetObservations)
	weather.DELETE("/:id", weatherHandler.DeleteObservation)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, username, password string) (token string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":"%s@test.com","password":%q,"full_name":"Test User"}`, username, username, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(float64)
}

// loginUser logs in and returns the token.
func (app *testApp) loginUser(t *testing.T, username, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}
