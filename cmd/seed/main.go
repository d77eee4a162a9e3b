// Command seed loads sample data into the database for demos and local
// development. It is idempotent only in the sense that rerunning it adds
// the rows again; run it against a fresh database.
package main

import (
	"fmt"
	"os"
	"time"

	"farmstead/internal/database"
	"farmstead/internal/logger"
	"farmstead/internal/models"
	"farmstead/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	farmerService := services.NewFarmerService(db)
	cropService := services.NewCropService(db)
	financeService := services.NewFinanceService(db)

	farmers := []struct {
		name, phone, email string
		farmSize           float64
	}{
		{"John Smith", "555-0101", "john@farm.com", 150.5},
		{"Mary Johnson", "555-0102", "mary@farm.com", 200.0},
		{"David Wilson", "555-0103", "david@farm.com", 75.25},
		{"Sarah Brown", "555-0104", "sarah@farm.com", 120.75},
		{"Michael Davis", "555-0105", "michael@farm.com", 300.0},
	}
	for _, f := range farmers {
		size := f.farmSize
		if _, err := farmerService.CreateFarmer(f.name, f.phone, f.email, "", &size); err != nil {
			return fmt.Errorf("failed to seed farmer %q: %w", f.name, err)
		}
	}

	crops := []struct {
		name, variety string
		growthPeriod  int
		yieldPerAcre  float64
		pricePerUnit  float64
	}{
		{"Wheat", "Winter Wheat", 120, 50.0, 2500.00},
		{"Corn", "Sweet Corn", 90, 180.0, 1800.00},
		{"Soybeans", "Roundup Ready", 100, 45.0, 3200.00},
		{"Rice", "Basmati", 150, 60.0, 4000.00},
		{"Cotton", "Bollgard", 180, 800.0, 150.00},
	}
	for _, cr := range crops {
		gp, ypa, ppu := cr.growthPeriod, cr.yieldPerAcre, cr.pricePerUnit
		if _, err := cropService.CreateCrop(cr.name, cr.variety, &gp, &ypa, &ppu); err != nil {
			return fmt.Errorf("failed to seed crop %q: %w", cr.name, err)
		}
	}

	plantings := []struct {
		farmerID, cropID uint
		plantingDate     string
		area             float64
		harvestDate      string
		status           models.PlantingStatus
	}{
		{1, 1, "2024-03-15", 25.0, "2024-07-15", models.PlantingStatusGrowing},
		{2, 2, "2024-04-01", 30.0, "2024-07-01", models.PlantingStatusGrowing},
		{3, 3, "2024-03-20", 20.0, "2024-06-20", models.PlantingStatusGrowing},
		{4, 4, "2024-05-01", 15.0, "2024-09-01", models.PlantingStatusPlanned},
		{5, 5, "2024-04-15", 40.0, "2024-10-15", models.PlantingStatusGrowing},
	}
	for _, p := range plantings {
		harvest := mustDate(p.harvestDate)
		planting, err := cropService.CreatePlanting(p.farmerID, p.cropID, mustDate(p.plantingDate), p.area, &harvest)
		if err != nil {
			return fmt.Errorf("failed to seed planting for farmer %d: %w", p.farmerID, err)
		}
		if p.status != models.PlantingStatusGrowing {
			if err := cropService.UpdatePlantingStatus(planting.ID, p.status); err != nil {
				return fmt.Errorf("failed to set planting %d status: %w", planting.ID, err)
			}
		}
	}

	transactions := []struct {
		farmerID    uint
		txType      models.TransactionType
		category    string
		amount      float64
		date        string
		description string
	}{
		{1, models.TransactionTypeIncome, "Crop Sale", 125000.00, "2024-06-15", "Wheat harvest sale"},
		{2, models.TransactionTypeIncome, "Crop Sale", 108000.00, "2024-07-01", "Corn harvest sale"},
		{3, models.TransactionTypeIncome, "Crop Sale", 64000.00, "2024-06-20", "Soybean harvest sale"},
		{1, models.TransactionTypeExpense, "Fertilizer", 15000.00, "2024-03-10", "Spring fertilizer application"},
		{2, models.TransactionTypeExpense, "Seeds", 12000.00, "2024-04-01", "Corn seeds purchase"},
		{3, models.TransactionTypeExpense, "Pesticides", 8000.00, "2024-05-15", "Pest control chemicals"},
		{4, models.TransactionTypeExpense, "Equipment", 25000.00, "2024-02-20", "Tractor maintenance"},
		{5, models.TransactionTypeIncome, "Crop Sale", 60000.00, "2024-08-15", "Rice harvest sale"},
		{1, models.TransactionTypeExpense, "Labor", 20000.00, "2024-06-01", "Harvesting labor costs"},
		{2, models.TransactionTypeExpense, "Irrigation", 5000.00, "2024-05-01", "Water system maintenance"},
	}
	for _, t := range transactions {
		date := mustDate(t.date)
		if _, err := financeService.CreateTransaction(t.farmerID, t.txType, t.category, t.amount, t.description, &date); err != nil {
			return fmt.Errorf("failed to seed transaction for farmer %d: %w", t.farmerID, err)
		}
	}

	log.Infof("Seeded %d farmers, %d crops, %d plantings, %d transactions",
		len(farmers), len(crops), len(plantings), len(transactions))
	return nil
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
