package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"farmstead/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date builds a UTC midnight time from a YYYY-MM-DD string. It panics on a
// malformed input, which is always a test bug.
func Date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(fmt.Sprintf("bad fixture date %q: %v", value, err))
	}
	return t.UTC()
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := nextID()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     fmt.Sprintf("user%d", n),
		Email:        fmt.Sprintf("user%d@test.com", n),
		PasswordHash: string(hash),
		FullName:     fmt.Sprintf("Test User %d", n),
		Role:         models.UserRoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestFarmer creates a farmer with a unique name.
func CreateTestFarmer(t *testing.T, db *gorm.DB) *models.Farmer {
	t.Helper()
	return CreateTestFarmerWithName(t, db, fmt.Sprintf("Test Farmer %d", nextID()))
}

// CreateTestFarmerWithName creates a farmer with the given name.
func CreateTestFarmerWithName(t *testing.T, db *gorm.DB, name string) *models.Farmer {
	t.Helper()

	size := 100.0
	farmer := &models.Farmer{
		Name:     name,
		Phone:    fmt.Sprintf("555-%04d", nextID()),
		Email:    fmt.Sprintf("farmer%d@test.com", nextID()),
		Address:  "1 Test Lane",
		FarmSize: &size,
	}
	if err := db.Create(farmer).Error; err != nil {
		t.Fatalf("failed to create test farmer: %v", err)
	}
	return farmer
}

// CreateTestCrop creates a crop with the given growth period in days.
// Pass a negative value for a crop without a growth period.
func CreateTestCrop(t *testing.T, db *gorm.DB, growthPeriodDays int) *models.Crop {
	t.Helper()

	crop := &models.Crop{
		Name:    fmt.Sprintf("Test Crop %d", nextID()),
		Variety: "Standard",
	}
	if growthPeriodDays >= 0 {
		crop.GrowthPeriod = &growthPeriodDays
	}
	if err := db.Create(crop).Error; err != nil {
		t.Fatalf("failed to create test crop: %v", err)
	}
	return crop
}

// CreateTestPlanting creates a planting with status Growing.
func CreateTestPlanting(t *testing.T, db *gorm.DB, farmerID, cropID uint, plantingDate time.Time, area float64) *models.Planting {
	t.Helper()

	planting := &models.Planting{
		FarmerID:     farmerID,
		CropID:       cropID,
		PlantingDate: plantingDate,
		AreaPlanted:  area,
		Status:       models.PlantingStatusGrowing,
	}
	if err := db.Create(planting).Error; err != nil {
		t.Fatalf("failed to create test planting: %v", err)
	}
	return planting
}

// CreateTestTransaction creates a transaction of the given type and amount
// dated on the given day.
func CreateTestTransaction(t *testing.T, db *gorm.DB, farmerID uint, txType models.TransactionType, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		FarmerID: farmerID,
		Type:     txType,
		Category: "General",
		Amount:   amount,
		Date:     date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestEquipment creates a piece of equipment with status Active.
func CreateTestEquipment(t *testing.T, db *gorm.DB) *models.Equipment {
	t.Helper()

	cost := 1000.0
	equipment := &models.Equipment{
		Name:   fmt.Sprintf("Test Equipment %d", nextID()),
		Type:   "Tractor",
		Cost:   &cost,
		Status: models.EquipmentStatusActive,
	}
	if err := db.Create(equipment).Error; err != nil {
		t.Fatalf("failed to create test equipment: %v", err)
	}
	return equipment
}

// CreateTestInventoryItem creates a stocked inventory item.
func CreateTestInventoryItem(t *testing.T, db *gorm.DB) *models.InventoryItem {
	t.Helper()

	cost := 25.0
	item := &models.InventoryItem{
		Name:        fmt.Sprintf("Test Item %d", nextID()),
		Category:    "Seeds",
		Quantity:    50,
		Unit:        "kg",
		CostPerUnit: &cost,
		Supplier:    "Test Supplier",
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test inventory item: %v", err)
	}
	return item
}
