package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/models"
	"farmstead/internal/services"
)

// CropHandler handles crop and planting requests
type CropHandler struct {
	cropService services.CropServicer
}

// NewCropHandler creates a new CropHandler
func NewCropHandler(cropService services.CropServicer) *CropHandler {
	return &CropHandler{cropService: cropService}
}

// CreateCropRequest represents the request payload for adding a crop type
type CreateCropRequest struct {
	Name         string   `json:"name" binding:"required,max=255"`
	Variety      string   `json:"variety" binding:"max=255"`
	GrowthPeriod *int     `json:"growth_period" binding:"omitempty,min=0"`
	YieldPerAcre *float64 `json:"yield_per_acre" binding:"omitempty,min=0"`
	PricePerUnit *float64 `json:"price_per_unit" binding:"omitempty,min=0"`
}

// CreatePlantingRequest represents the request payload for recording a planting.
// When expected_harvest_date is omitted it is derived from the crop's growth period.
type CreatePlantingRequest struct {
	FarmerID            uint    `json:"farmer_id" binding:"required"`
	CropID              uint    `json:"crop_id" binding:"required"`
	PlantingDate        string  `json:"planting_date" binding:"required,datestring"`
	AreaPlanted         float64 `json:"area_planted" binding:"min=0"`
	ExpectedHarvestDate string  `json:"expected_harvest_date" binding:"omitempty,datestring"`
}

// UpdatePlantingStatusRequest carries the new status for a planting
type UpdatePlantingStatusRequest struct {
	Status string `json:"status" binding:"required,max=50"`
}

// CreateCrop handles adding a crop type
// @Summary     Add a crop
// @Description Add a new crop type to the catalog
// @Tags        crops
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCropRequest true "Crop details"
// @Success     201 {object} models.Crop "Crop created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /crops [post]
func (h *CropHandler) CreateCrop(c *gin.Context) {
	var req CreateCropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	crop, err := h.cropService.CreateCrop(req.Name, req.Variety, req.GrowthPeriod, req.YieldPerAcre, req.PricePerUnit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"crop": crop})
}

// GetAllCrops lists the crop catalog
// @Summary     List crops
// @Description List all crop types ordered by name
// @Tags        crops
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Crop "List of crops"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /crops [get]
func (h *CropHandler) GetAllCrops(c *gin.Context) {
	crops, err := h.cropService.GetAllCrops()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"crops": crops})
}

// GetCropByID retrieves a specific crop
// @Summary     Get crop by ID
// @Description Get a specific crop type by ID
// @Tags        crops
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Crop ID"
// @Success     200 {object} models.Crop "Crop details"
// @Failure     400 {object} ErrorResponse "Invalid crop ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Crop not found"
// @Router      /crops/{id} [get]
func (h *CropHandler) GetCropByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	crop, err := h.cropService.GetCropByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"crop": crop})
}

// GetCropStatistics returns per-crop planting aggregates
// @Summary     Crop statistics
// @Description All-time planting aggregates per crop plus growing-only aggregates
// @Tags        crops
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.CropStatistics "Crop statistics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /crops/statistics [get]
func (h *CropHandler) GetCropStatistics(c *gin.Context) {
	stats, err := h.cropService.GetCropStatistics()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}

// CreatePlanting records a planting
// @Summary     Record a planting
// @Description Record a planting; the expected harvest date is derived from the crop's growth period when omitted
// @Tags        plantings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePlantingRequest true "Planting details"
// @Success     201 {object} models.Planting "Planting created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plantings [post]
func (h *CropHandler) CreatePlanting(c *gin.Context) {
	var req CreatePlantingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plantingDate, err := parseDate("planting_date", req.PlantingDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	harvestDate, err := parseOptionalDate("expected_harvest_date", req.ExpectedHarvestDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	planting, err := h.cropService.CreatePlanting(req.FarmerID, req.CropID, plantingDate, req.AreaPlanted, harvestDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"planting": planting})
}

// GetAllPlantings lists plantings, optionally for one farmer
// @Summary     List plantings
// @Description List plantings with farmer and crop names, most recent first
// @Tags        plantings
// @Produce     json
// @Security    BearerAuth
// @Param       farmer_id query int false "Restrict to one farmer"
// @Success     200 {array} services.PlantingRecord "List of plantings"
// @Failure     400 {object} ErrorResponse "Invalid farmer_id"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plantings [get]
func (h *CropHandler) GetAllPlantings(c *gin.Context) {
	var farmerID *uint
	if raw := c.Query("farmer_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid farmer_id"))
			return
		}
		v := uint(id)
		farmerID = &v
	}

	plantings, err := h.cropService.GetAllPlantings(farmerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plantings": plantings})
}

// GetPlantingByID retrieves a specific planting
// @Summary     Get planting by ID
// @Description Get one planting with its farmer and crop names
// @Tags        plantings
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Planting ID"
// @Success     200 {object} services.PlantingRecord "Planting details"
// @Failure     400 {object} ErrorResponse "Invalid planting ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Planting not found"
// @Router      /plantings/{id} [get]
func (h *CropHandler) GetPlantingByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	planting, err := h.cropService.GetPlantingByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"planting": planting})
}

// UpdatePlantingStatus changes the status of a planting
// @Summary     Update planting status
// @Description Set a planting's status string
// @Tags        plantings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Planting ID"
// @Param       request body UpdatePlantingStatusRequest true "New status"
// @Success     200 {object} map[string]string "Status updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Planting not found"
// @Router      /plantings/{id}/status [put]
func (h *CropHandler) UpdatePlantingStatus(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePlantingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.cropService.UpdatePlantingStatus(id, models.PlantingStatus(req.Status)); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Planting status updated"})
}

// GetHarvestSchedule lists upcoming harvests
// @Summary     Harvest schedule
// @Description Growing plantings whose expected harvest date falls within the window
// @Tags        plantings
// @Produce     json
// @Security    BearerAuth
// @Param       days query int false "Window in days (default 30)"
// @Success     200 {array} services.HarvestEntry "Upcoming harvests"
// @Failure     400 {object} ErrorResponse "Invalid days"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plantings/harvest-schedule [get]
func (h *CropHandler) GetHarvestSchedule(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid days"))
			return
		}
		days = v
	}

	schedule, err := h.cropService.GetHarvestSchedule(days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}
