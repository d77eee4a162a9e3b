package services

import (
	"time"

	"farmstead/internal/models"
	"farmstead/internal/pagination"
)

// FarmerUpdate describes a partial update to a farmer record. A nil field
// keeps the stored value; a non-nil field replaces it, so explicitly setting
// a field to empty is distinguishable from not providing it.
type FarmerUpdate struct {
	Name     *string
	Phone    *string
	Email    *string
	Address  *string
	FarmSize *float64
}

// FarmerStatistics aggregates planting and financial totals for one farmer.
// The two halves come from independent queries over plantings and
// transactions; totals default to zero when no rows match.
type FarmerStatistics struct {
	TotalPlantings int64   `json:"total_plantings"`
	TotalArea      float64 `json:"total_area"`
	TotalIncome    float64 `json:"total_income"`
	TotalExpenses  float64 `json:"total_expenses"`
}

// FarmerServicer defines the contract for farmer record keeping.
type FarmerServicer interface {
	CreateFarmer(name, phone, email, address string, farmSize *float64) (*models.Farmer, error)
	GetAllFarmers() ([]models.Farmer, error)
	GetFarmerByID(id uint) (*models.Farmer, error)
	UpdateFarmer(id uint, update FarmerUpdate) (*models.Farmer, error)
	DeleteFarmer(id uint) error
	SearchFarmers(term string) ([]models.Farmer, error)
	GetFarmerStatistics(id uint) (*FarmerStatistics, error)
}

// PlantingRecord is a planting row joined with its farmer and crop names.
// Rows whose farmer or crop has been deleted are omitted by the inner join.
type PlantingRecord struct {
	ID                  uint                  `json:"id"`
	FarmerID            uint                  `json:"farmer_id"`
	CropID              uint                  `json:"crop_id"`
	FarmerName          string                `json:"farmer_name"`
	CropName            string                `json:"crop_name"`
	PlantingDate        time.Time             `json:"planting_date"`
	AreaPlanted         float64               `json:"area_planted"`
	ExpectedHarvestDate *time.Time            `json:"expected_harvest_date,omitempty"`
	Status              models.PlantingStatus `json:"status"`
}

// CropPlantingStats holds all-time planting aggregates for one crop.
// Crops with zero plantings appear with zero counts and nil sums.
type CropPlantingStats struct {
	CropName       string   `json:"crop_name"`
	TotalPlantings int64    `json:"total_plantings"`
	TotalArea      *float64 `json:"total_area"`
	AvgArea        *float64 `json:"avg_area"`
}

// GrowingCropStats holds per-crop aggregates restricted to growing plantings.
type GrowingCropStats struct {
	CropName         string  `json:"crop_name"`
	GrowingCount     int64   `json:"growing_count"`
	TotalGrowingArea float64 `json:"total_growing_area"`
}

// CropStatistics bundles the two independent crop aggregate sets.
type CropStatistics struct {
	CropStats    []CropPlantingStats `json:"crop_stats"`
	GrowingCrops []GrowingCropStats  `json:"growing_crops"`
}

// HarvestEntry is one upcoming harvest in the schedule.
type HarvestEntry struct {
	PlantingID          uint                  `json:"planting_id"`
	FarmerName          string                `json:"farmer_name"`
	CropName            string                `json:"crop_name"`
	PlantingDate        time.Time             `json:"planting_date"`
	ExpectedHarvestDate time.Time             `json:"expected_harvest_date"`
	AreaPlanted         float64               `json:"area_planted"`
	Status              models.PlantingStatus `json:"status"`
}

// CropServicer defines the contract for crop and planting record keeping.
type CropServicer interface {
	CreateCrop(name, variety string, growthPeriod *int, yieldPerAcre, pricePerUnit *float64) (*models.Crop, error)
	GetAllCrops() ([]models.Crop, error)
	GetCropByID(id uint) (*models.Crop, error)
	CreatePlanting(farmerID, cropID uint, plantingDate time.Time, areaPlanted float64, expectedHarvestDate *time.Time) (*models.Planting, error)
	GetAllPlantings(farmerID *uint) ([]PlantingRecord, error)
	GetPlantingByID(id uint) (*PlantingRecord, error)
	UpdatePlantingStatus(id uint, status models.PlantingStatus) error
	GetCropStatistics() (*CropStatistics, error)
	GetHarvestSchedule(daysAhead int) ([]HarvestEntry, error)
}

// TransactionFilter holds optional filter parameters for listing
// transactions. All set filters are combined conjunctively.
type TransactionFilter struct {
	FarmerID  *uint
	StartDate *time.Time
	EndDate   *time.Time
	Type      *models.TransactionType
}

// TransactionRecord is a transaction row joined with its farmer name.
type TransactionRecord struct {
	ID          uint                   `json:"id"`
	FarmerID    uint                   `json:"farmer_id"`
	FarmerName  string                 `json:"farmer_name"`
	Type        models.TransactionType `json:"type"`
	Category    string                 `json:"category"`
	Amount      float64                `json:"amount"`
	Description string                 `json:"description"`
	Date        time.Time              `json:"date"`
}

// TransactionUpdate describes a partial update to a transaction.
// Nil keeps the stored value. The transaction date is not updatable.
type TransactionUpdate struct {
	Type        *models.TransactionType
	Category    *string
	Amount      *float64
	Description *string
}

// FinancialSummary holds overall income, expense, and profit totals.
// All fields default to zero when no transactions exist.
type FinancialSummary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
}

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthlySummary aggregates transactions by calendar month number across
// all years: a July 2023 row and a July 2024 row share the "07" bucket.
type MonthlySummary struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// FinanceServicer defines the contract for financial record keeping.
type FinanceServicer interface {
	CreateTransaction(farmerID uint, txType models.TransactionType, category string, amount float64, description string, date *time.Time) (*models.Transaction, error)
	GetTransactions(filter TransactionFilter) ([]TransactionRecord, error)
	GetFinancialSummary() (*FinancialSummary, error)
	GetCategoryBreakdown() ([]CategoryTotal, error)
	GetMonthlySummary() ([]MonthlySummary, error)
	GetTopExpenses(limit int) ([]models.Transaction, error)
	GetTopIncome(limit int) ([]models.Transaction, error)
	UpdateTransaction(id uint, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(id uint) error
}

// UserServicer defines the contract for user accounts and login.
type UserServicer interface {
	CreateUser(username, email, password, fullName string, role models.UserRole) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
	EnsureDefaultAdmin(username, email, password string) error
}

// EquipmentServicer defines the contract for equipment records.
type EquipmentServicer interface {
	CreateEquipment(name, equipmentType string, purchaseDate *time.Time, cost *float64) (*models.Equipment, error)
	GetEquipment(page pagination.PageRequest) (*pagination.PageResponse[models.Equipment], error)
	GetEquipmentByID(id uint) (*models.Equipment, error)
	UpdateEquipmentStatus(id uint, status models.EquipmentStatus) error
	DeleteEquipment(id uint) error
}

// InventoryItemUpdate describes a partial update to an inventory item.
type InventoryItemUpdate struct {
	Name        *string
	Category    *string
	Quantity    *int
	Unit        *string
	CostPerUnit *float64
	Supplier    *string
}

// InventoryServicer defines the contract for inventory records.
type InventoryServicer interface {
	CreateItem(name, category string, quantity int, unit string, costPerUnit *float64, supplier string) (*models.InventoryItem, error)
	GetItems(page pagination.PageRequest) (*pagination.PageResponse[models.InventoryItem], error)
	GetItemByID(id uint) (*models.InventoryItem, error)
	UpdateItem(id uint, update InventoryItemUpdate) (*models.InventoryItem, error)
	DeleteItem(id uint) error
}

// WeatherServicer defines the contract for weather observations.
type WeatherServicer interface {
	RecordObservation(date time.Time, temperature, humidity, rainfall *float64, description string) (*models.WeatherRecord, error)
	GetObservations(from, to *time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.WeatherRecord], error)
	DeleteObservation(id uint) error
}
