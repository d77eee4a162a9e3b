package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/pagination"
	"farmstead/internal/services"
)

// WeatherHandler handles weather observation requests
type WeatherHandler struct {
	weatherService services.WeatherServicer
}

// NewWeatherHandler creates a new WeatherHandler
func NewWeatherHandler(weatherService services.WeatherServicer) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

// RecordObservationRequest represents the request payload for recording a weather observation
type RecordObservationRequest struct {
	Date        string   `json:"date" binding:"required,datestring"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity" binding:"omitempty,min=0,max=100"`
	Rainfall    *float64 `json:"rainfall" binding:"omitempty,min=0"`
	Description string   `json:"description" binding:"max=500"`
}

// RecordObservation records a weather observation
// @Summary     Record weather observation
// @Description Record a daily weather observation
// @Tags        weather
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RecordObservationRequest true "Observation details"
// @Success     201 {object} models.WeatherRecord "Observation created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /weather [post]
func (h *WeatherHandler) RecordObservation(c *gin.Context) {
	var req RecordObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.weatherService.RecordObservation(date, req.Temperature, req.Humidity, req.Rainfall, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"observation": record})
}

// GetObservations lists weather observations
// @Summary     List weather observations
// @Description Paginated weather observations, most recent first, optionally within a date range
// @Tags        weather
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Earliest date (YYYY-MM-DD)"
// @Param       to query string false "Latest date (YYYY-MM-DD)"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.WeatherRecord] "Observation page"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /weather [get]
func (h *WeatherHandler) GetObservations(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	from, err := parseOptionalDate("from", c.Query("from"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseOptionalDate("to", c.Query("to"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.weatherService.GetObservations(from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteObservation removes a weather observation
// @Summary     Delete weather observation
// @Description Delete a weather observation record
// @Tags        weather
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Observation ID"
// @Success     204 "Observation deleted"
// @Failure     400 {object} ErrorResponse "Invalid observation ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Observation not found"
// @Router      /weather/{id} [delete]
func (h *WeatherHandler) DeleteObservation(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.weatherService.DeleteObservation(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
