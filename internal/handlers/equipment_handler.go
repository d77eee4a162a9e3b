package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/models"
	"farmstead/internal/pagination"
	"farmstead/internal/services"
)

// EquipmentHandler handles equipment requests
type EquipmentHandler struct {
	equipmentService services.EquipmentServicer
}

// NewEquipmentHandler creates a new EquipmentHandler
func NewEquipmentHandler(equipmentService services.EquipmentServicer) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: equipmentService}
}

// CreateEquipmentRequest represents the request payload for registering equipment
type CreateEquipmentRequest struct {
	Name         string   `json:"name" binding:"required,max=255"`
	Type         string   `json:"type" binding:"max=255"`
	PurchaseDate string   `json:"purchase_date" binding:"omitempty,datestring"`
	Cost         *float64 `json:"cost" binding:"omitempty,min=0"`
}

// UpdateEquipmentStatusRequest carries the new status for a piece of equipment
type UpdateEquipmentStatusRequest struct {
	Status string `json:"status" binding:"required,max=50"`
}

// CreateEquipment registers a piece of equipment
// @Summary     Register equipment
// @Description Register a piece of farm equipment
// @Tags        equipment
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateEquipmentRequest true "Equipment details"
// @Success     201 {object} models.Equipment "Equipment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /equipment [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	purchaseDate, err := parseOptionalDate("purchase_date", req.PurchaseDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	equipment, err := h.equipmentService.CreateEquipment(req.Name, req.Type, purchaseDate, req.Cost)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"equipment": equipment})
}

// GetEquipment lists equipment with pagination
// @Summary     List equipment
// @Description Paginated equipment list ordered by name
// @Tags        equipment
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Equipment] "Equipment page"
// @Failure     400 {object} ErrorResponse "Invalid pagination"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /equipment [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.equipmentService.GetEquipment(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetEquipmentByID retrieves one piece of equipment
// @Summary     Get equipment by ID
// @Description Get one equipment record by ID
// @Tags        equipment
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Equipment ID"
// @Success     200 {object} models.Equipment "Equipment details"
// @Failure     400 {object} ErrorResponse "Invalid equipment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Equipment not found"
// @Router      /equipment/{id} [get]
func (h *EquipmentHandler) GetEquipmentByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	equipment, err := h.equipmentService.GetEquipmentByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"equipment": equipment})
}

// UpdateEquipmentStatus changes the status of a piece of equipment
// @Summary     Update equipment status
// @Description Set an equipment record's status string
// @Tags        equipment
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Equipment ID"
// @Param       request body UpdateEquipmentStatusRequest true "New status"
// @Success     200 {object} map[string]string "Status updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Equipment not found"
// @Router      /equipment/{id}/status [put]
func (h *EquipmentHandler) UpdateEquipmentStatus(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateEquipmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.equipmentService.UpdateEquipmentStatus(id, models.EquipmentStatus(req.Status)); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Equipment status updated"})
}

// DeleteEquipment removes a piece of equipment
// @Summary     Delete equipment
// @Description Delete an equipment record
// @Tags        equipment
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Equipment ID"
// @Success     204 "Equipment deleted"
// @Failure     400 {object} ErrorResponse "Invalid equipment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Equipment not found"
// @Router      /equipment/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.equipmentService.DeleteEquipment(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
