package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/models"
	"farmstead/internal/pagination"
)

// equipmentService handles equipment records.
type equipmentService struct {
	db *gorm.DB
}

// NewEquipmentService creates a new EquipmentServicer.
func NewEquipmentService(db *gorm.DB) EquipmentServicer {
	return &equipmentService{db: db}
}

// CreateEquipment registers a piece of equipment with status Active.
func (s *equipmentService) CreateEquipment(name, equipmentType string, purchaseDate *time.Time, cost *float64) (*models.Equipment, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "equipment name is required")
	}

	equipment := &models.Equipment{
		Name:         name,
		Type:         equipmentType,
		PurchaseDate: purchaseDate,
		Cost:         cost,
		Status:       models.EquipmentStatusActive,
	}

	if err := s.db.Create(equipment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return equipment, nil
}

// GetEquipment retrieves a paginated list of equipment ordered by name.
func (s *equipmentService) GetEquipment(page pagination.PageRequest) (*pagination.PageResponse[models.Equipment], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Equipment{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var equipment []models.Equipment
	if err := base.Order("name").Scopes(pagination.Paginate(page)).Find(&equipment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(equipment, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetEquipmentByID retrieves a piece of equipment by ID.
func (s *equipmentService) GetEquipmentByID(id uint) (*models.Equipment, error) {
	var equipment models.Equipment
	if err := s.db.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &equipment, nil
}

// UpdateEquipmentStatus sets the status of a piece of equipment.
func (s *equipmentService) UpdateEquipmentStatus(id uint, status models.EquipmentStatus) error {
	if status == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "status is required")
	}

	res := s.db.Model(&models.Equipment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}

// DeleteEquipment removes a piece of equipment.
func (s *equipmentService) DeleteEquipment(id uint) error {
	res := s.db.Delete(&models.Equipment{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}
