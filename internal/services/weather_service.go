package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/models"
	"farmstead/internal/pagination"
)

// weatherService handles weather observations.
type weatherService struct {
	db *gorm.DB
}

// NewWeatherService creates a new WeatherServicer.
func NewWeatherService(db *gorm.DB) WeatherServicer {
	return &weatherService{db: db}
}

// RecordObservation stores a daily weather observation.
func (s *weatherService) RecordObservation(date time.Time, temperature, humidity, rainfall *float64, description string) (*models.WeatherRecord, error) {
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "observation date is required")
	}

	record := &models.WeatherRecord{
		Date:        date,
		Temperature: temperature,
		Humidity:    humidity,
		Rainfall:    rainfall,
		Description: description,
	}

	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return record, nil
}

// GetObservations retrieves a paginated list of observations, newest first,
// optionally restricted to a date range.
func (s *weatherService) GetObservations(from, to *time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.WeatherRecord], error) {
	page.Defaults()

	base := s.db.Model(&models.WeatherRecord{})
	if from != nil {
		base = base.Where("date >= ?", *from)
	}
	if to != nil {
		base = base.Where("date <= ?", *to)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.WeatherRecord
	if err := base.Order("date DESC").Scopes(pagination.Paginate(page)).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteObservation removes a weather observation.
func (s *weatherService) DeleteObservation(id uint) error {
	res := s.db.Delete(&models.WeatherRecord{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrWeatherRecordNotFound
	}
	return nil
}
