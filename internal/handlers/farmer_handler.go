package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/services"
)

// FarmerHandler handles farmer-related requests
type FarmerHandler struct {
	farmerService services.FarmerServicer
}

// NewFarmerHandler creates a new FarmerHandler
func NewFarmerHandler(farmerService services.FarmerServicer) *FarmerHandler {
	return &FarmerHandler{farmerService: farmerService}
}

// CreateFarmerRequest represents the request payload for registering a farmer
type CreateFarmerRequest struct {
	Name     string   `json:"name" binding:"required,max=255"`
	Phone    string   `json:"phone" binding:"max=50"`
	Email    string   `json:"email" binding:"omitempty,email,max=255"`
	Address  string   `json:"address" binding:"max=500"`
	FarmSize *float64 `json:"farm_size" binding:"omitempty,min=0"`
}

// UpdateFarmerRequest represents the request payload for a partial update.
// Omitted fields keep their stored values.
type UpdateFarmerRequest struct {
	Name     *string  `json:"name"`
	Phone    *string  `json:"phone"`
	Email    *string  `json:"email"`
	Address  *string  `json:"address"`
	FarmSize *float64 `json:"farm_size" binding:"omitempty,min=0"`
}

// CreateFarmer handles farmer registration
// @Summary     Register a farmer
// @Description Register a new farmer record
// @Tags        farmers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateFarmerRequest true "Farmer details"
// @Success     201 {object} models.Farmer "Farmer created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /farmers [post]
func (h *FarmerHandler) CreateFarmer(c *gin.Context) {
	var req CreateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	farmer, err := h.farmerService.CreateFarmer(req.Name, req.Phone, req.Email, req.Address, req.FarmSize)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"farmer": farmer})
}

// GetAllFarmers lists all farmers
// @Summary     List farmers
// @Description List all farmers ordered by name
// @Tags        farmers
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Farmer "List of farmers"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /farmers [get]
func (h *FarmerHandler) GetAllFarmers(c *gin.Context) {
	farmers, err := h.farmerService.GetAllFarmers()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"farmers": farmers})
}

// SearchFarmers searches farmers by name, phone, or email
// @Summary     Search farmers
// @Description Substring search over farmer name, phone, and email
// @Tags        farmers
// @Produce     json
// @Security    BearerAuth
// @Param       q query string true "Search term"
// @Success     200 {array} models.Farmer "Matching farmers"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /farmers/search [get]
func (h *FarmerHandler) SearchFarmers(c *gin.Context) {
	farmers, err := h.farmerService.SearchFarmers(c.Query("q"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"farmers": farmers})
}

// GetFarmerByID retrieves a specific farmer
// @Summary     Get farmer by ID
// @Description Get a specific farmer record by ID
// @Tags        farmers
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Farmer ID"
// @Success     200 {object} models.Farmer "Farmer details"
// @Failure     400 {object} ErrorResponse "Invalid farmer ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Farmer not found"
// @Router      /farmers/{id} [get]
func (h *FarmerHandler) GetFarmerByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	farmer, err := h.farmerService.GetFarmerByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"farmer": farmer})
}

// UpdateFarmer applies a partial update to a farmer
// @Summary     Update farmer
// @Description Partially update a farmer record; omitted fields are kept
// @Tags        farmers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Farmer ID"
// @Param       request body UpdateFarmerRequest true "Fields to update"
// @Success     200 {object} models.Farmer "Updated farmer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Farmer not found"
// @Router      /farmers/{id} [put]
func (h *FarmerHandler) UpdateFarmer(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	farmer, err := h.farmerService.UpdateFarmer(id, services.FarmerUpdate{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		FarmSize: req.FarmSize,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"farmer": farmer})
}

// DeleteFarmer removes a farmer
// @Summary     Delete farmer
// @Description Delete a farmer record. Plantings and transactions referencing the farmer are kept.
// @Tags        farmers
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Farmer ID"
// @Success     204 "Farmer deleted"
// @Failure     400 {object} ErrorResponse "Invalid farmer ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Farmer not found"
// @Router      /farmers/{id} [delete]
func (h *FarmerHandler) DeleteFarmer(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.farmerService.DeleteFarmer(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetFarmerStatistics returns planting and financial aggregates for a farmer
// @Summary     Farmer statistics
// @Description Planting count, total area, and income/expense totals for one farmer
// @Tags        farmers
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Farmer ID"
// @Success     200 {object} services.FarmerStatistics "Farmer statistics"
// @Failure     400 {object} ErrorResponse "Invalid farmer ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Farmer not found"
// @Router      /farmers/{id}/statistics [get]
func (h *FarmerHandler) GetFarmerStatistics(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.farmerService.GetFarmerStatistics(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}
