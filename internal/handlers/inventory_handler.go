package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/pagination"
	"farmstead/internal/services"
)

// InventoryHandler handles inventory requests
type InventoryHandler struct {
	inventoryService services.InventoryServicer
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService services.InventoryServicer) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// CreateInventoryItemRequest represents the request payload for adding an inventory item
type CreateInventoryItemRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Category    string   `json:"category" binding:"max=255"`
	Quantity    int      `json:"quantity" binding:"min=0"`
	Unit        string   `json:"unit" binding:"max=50"`
	CostPerUnit *float64 `json:"cost_per_unit" binding:"omitempty,min=0"`
	Supplier    string   `json:"supplier" binding:"max=255"`
}

// UpdateInventoryItemRequest represents a partial inventory item update.
// Omitted fields keep their stored values.
type UpdateInventoryItemRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Quantity    *int     `json:"quantity" binding:"omitempty,min=0"`
	Unit        *string  `json:"unit"`
	CostPerUnit *float64 `json:"cost_per_unit" binding:"omitempty,min=0"`
	Supplier    *string  `json:"supplier"`
}

// CreateItem adds an inventory item
// @Summary     Add inventory item
// @Description Add an item to the farm inventory
// @Tags        inventory
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateInventoryItemRequest true "Item details"
// @Success     201 {object} models.InventoryItem "Item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /inventory [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.inventoryService.CreateItem(req.Name, req.Category, req.Quantity, req.Unit, req.CostPerUnit, req.Supplier)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// GetItems lists inventory items with pagination
// @Summary     List inventory
// @Description Paginated inventory list ordered by name
// @Tags        inventory
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.InventoryItem] "Inventory page"
// @Failure     400 {object} ErrorResponse "Invalid pagination"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /inventory [get]
func (h *InventoryHandler) GetItems(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.inventoryService.GetItems(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetItemByID retrieves one inventory item
// @Summary     Get inventory item by ID
// @Description Get one inventory item by ID
// @Tags        inventory
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Success     200 {object} models.InventoryItem "Item details"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /inventory/{id} [get]
func (h *InventoryHandler) GetItemByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	item, err := h.inventoryService.GetItemByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateItem applies a partial update to an inventory item
// @Summary     Update inventory item
// @Description Partially update an inventory item; omitted fields are kept
// @Tags        inventory
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Param       request body UpdateInventoryItemRequest true "Fields to update"
// @Success     200 {object} models.InventoryItem "Updated item"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.inventoryService.UpdateItem(id, services.InventoryItemUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		CostPerUnit: req.CostPerUnit,
		Supplier:    req.Supplier,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteItem removes an inventory item
// @Summary     Delete inventory item
// @Description Delete an inventory item
// @Tags        inventory
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Success     204 "Item deleted"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.inventoryService.DeleteItem(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
