package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/models"
)

// farmerService handles farmer record keeping.
type farmerService struct {
	db *gorm.DB
}

// NewFarmerService creates a new FarmerServicer.
func NewFarmerService(db *gorm.DB) FarmerServicer {
	return &farmerService{db: db}
}

// CreateFarmer registers a new farmer. The registration date defaults to
// the creation date.
func (s *farmerService) CreateFarmer(name, phone, email, address string, farmSize *float64) (*models.Farmer, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "farmer name is required")
	}
	if farmSize != nil && *farmSize < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "farm size must not be negative")
	}

	farmer := &models.Farmer{
		Name:     name,
		Phone:    phone,
		Email:    email,
		Address:  address,
		FarmSize: farmSize,
	}

	if err := s.db.Create(farmer).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return farmer, nil
}

// GetAllFarmers retrieves all farmers ordered by name.
func (s *farmerService) GetAllFarmers() ([]models.Farmer, error) {
	var farmers []models.Farmer
	if err := s.db.Order("name").Find(&farmers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return farmers, nil
}

// GetFarmerByID retrieves a farmer by ID.
func (s *farmerService) GetFarmerByID(id uint) (*models.Farmer, error) {
	var farmer models.Farmer
	if err := s.db.First(&farmer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFarmerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &farmer, nil
}

// UpdateFarmer applies a partial update: nil fields keep their stored
// value. Updating a nonexistent farmer fails without side effects.
func (s *farmerService) UpdateFarmer(id uint, update FarmerUpdate) (*models.Farmer, error) {
	if _, err := s.GetFarmerByID(id); err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "farmer name is required")
	}
	if update.FarmSize != nil && *update.FarmSize < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "farm size must not be negative")
	}

	updates := make(map[string]interface{})
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.Address != nil {
		updates["address"] = *update.Address
	}
	if update.FarmSize != nil {
		updates["farm_size"] = *update.FarmSize
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Farmer{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetFarmerByID(id)
}

// DeleteFarmer removes a farmer. Plantings and transactions referencing the
// farmer are left in place and will dangle; joined listings omit them.
func (s *farmerService) DeleteFarmer(id uint) error {
	res := s.db.Delete(&models.Farmer{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrFarmerNotFound
	}
	return nil
}

// SearchFarmers returns farmers whose name, phone, or email contains the
// term, ordered by name. Matching uses the storage engine's LIKE semantics.
func (s *farmerService) SearchFarmers(term string) ([]models.Farmer, error) {
	pattern := "%" + term + "%"
	var farmers []models.Farmer
	if err := s.db.
		Where("name LIKE ? OR phone LIKE ? OR email LIKE ?", pattern, pattern, pattern).
		Order("name").
		Find(&farmers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return farmers, nil
}

// GetFarmerStatistics returns planting and financial aggregates for one
// farmer. The two halves are computed by independent queries.
func (s *farmerService) GetFarmerStatistics(id uint) (*FarmerStatistics, error) {
	if _, err := s.GetFarmerByID(id); err != nil {
		return nil, err
	}

	var plantingTotals struct {
		TotalPlantings int64
		TotalArea      float64
	}
	if err := s.db.Model(&models.Planting{}).
		Select("COUNT(*) AS total_plantings, COALESCE(SUM(area_planted), 0) AS total_area").
		Where("farmer_id = ?", id).
		Scan(&plantingTotals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var financeTotals struct {
		TotalIncome   float64
		TotalExpenses float64
	}
	if err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income, " +
			"COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expenses").
		Where("farmer_id = ?", id).
		Scan(&financeTotals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &FarmerStatistics{
		TotalPlantings: plantingTotals.TotalPlantings,
		TotalArea:      plantingTotals.TotalArea,
		TotalIncome:    financeTotals.TotalIncome,
		TotalExpenses:  financeTotals.TotalExpenses,
	}, nil
}
