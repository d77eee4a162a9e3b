package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/models"
	"farmstead/internal/pagination"
)

// inventoryService handles inventory records.
type inventoryService struct {
	db *gorm.DB
}

// NewInventoryService creates a new InventoryServicer.
func NewInventoryService(db *gorm.DB) InventoryServicer {
	return &inventoryService{db: db}
}

// CreateItem adds a stocked supply item.
func (s *inventoryService) CreateItem(name, category string, quantity int, unit string, costPerUnit *float64, supplier string) (*models.InventoryItem, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "item name is required")
	}
	if quantity < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must not be negative")
	}

	item := &models.InventoryItem{
		Name:        name,
		Category:    category,
		Quantity:    quantity,
		Unit:        unit,
		CostPerUnit: costPerUnit,
		Supplier:    supplier,
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return item, nil
}

// GetItems retrieves a paginated list of inventory items ordered by name.
func (s *inventoryService) GetItems(page pagination.PageRequest) (*pagination.PageResponse[models.InventoryItem], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.InventoryItem{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var items []models.InventoryItem
	if err := base.Order("name").Scopes(pagination.Paginate(page)).Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(items, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetItemByID retrieves an inventory item by ID.
func (s *inventoryService) GetItemByID(id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInventoryItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}

// UpdateItem applies a partial update: nil fields keep their stored value.
func (s *inventoryService) UpdateItem(id uint, update InventoryItemUpdate) (*models.InventoryItem, error) {
	if _, err := s.GetItemByID(id); err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "item name is required")
	}
	if update.Quantity != nil && *update.Quantity < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must not be negative")
	}

	updates := make(map[string]interface{})
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Quantity != nil {
		updates["quantity"] = *update.Quantity
	}
	if update.Unit != nil {
		updates["unit"] = *update.Unit
	}
	if update.CostPerUnit != nil {
		updates["cost_per_unit"] = *update.CostPerUnit
	}
	if update.Supplier != nil {
		updates["supplier"] = *update.Supplier
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.InventoryItem{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetItemByID(id)
}

// DeleteItem removes an inventory item.
func (s *inventoryService) DeleteItem(id uint) error {
	res := s.db.Delete(&models.InventoryItem{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrInventoryItemNotFound
	}
	return nil
}
