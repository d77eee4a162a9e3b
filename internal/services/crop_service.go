package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/models"
)

// defaultHarvestWindowDays is the schedule lookahead when none is given.
const defaultHarvestWindowDays = 30

// cropService handles crop and planting record keeping.
type cropService struct {
	db *gorm.DB
}

// NewCropService creates a new CropServicer.
func NewCropService(db *gorm.DB) CropServicer {
	return &cropService{db: db}
}

// CreateCrop adds a new crop type. Crops are immutable once created.
func (s *cropService) CreateCrop(name, variety string, growthPeriod *int, yieldPerAcre, pricePerUnit *float64) (*models.Crop, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "crop name is required")
	}
	if growthPeriod != nil && *growthPeriod < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "growth period must not be negative")
	}

	crop := &models.Crop{
		Name:         name,
		Variety:      variety,
		GrowthPeriod: growthPeriod,
		YieldPerAcre: yieldPerAcre,
		PricePerUnit: pricePerUnit,
	}

	if err := s.db.Create(crop).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return crop, nil
}

// GetAllCrops retrieves all crops ordered by name.
func (s *cropService) GetAllCrops() ([]models.Crop, error) {
	var crops []models.Crop
	if err := s.db.Order("name").Find(&crops).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return crops, nil
}

// GetCropByID retrieves a crop by ID.
func (s *cropService) GetCropByID(id uint) (*models.Crop, error) {
	var crop models.Crop
	if err := s.db.First(&crop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCropNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &crop, nil
}

// CreatePlanting records a planting. When no expected harvest date is
// supplied it is derived as plantingDate + the crop's growth period; when
// the crop is missing or has no growth period the date stays unset. A
// missing crop does not fail the insert, matching the unenforced foreign
// key declarations.
func (s *cropService) CreatePlanting(farmerID, cropID uint, plantingDate time.Time, areaPlanted float64, expectedHarvestDate *time.Time) (*models.Planting, error) {
	if farmerID == 0 || cropID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "farmer ID and crop ID are required")
	}
	if plantingDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "planting date is required")
	}

	if expectedHarvestDate == nil {
		crop, err := s.GetCropByID(cropID)
		switch {
		case err == nil:
			if crop.GrowthPeriod != nil {
				harvest := plantingDate.AddDate(0, 0, *crop.GrowthPeriod)
				expectedHarvestDate = &harvest
			}
		case errors.Is(err, apperrors.ErrCropNotFound):
			// leave the harvest date unset
		default:
			return nil, err
		}
	}

	planting := &models.Planting{
		FarmerID:            farmerID,
		CropID:              cropID,
		PlantingDate:        plantingDate,
		AreaPlanted:         areaPlanted,
		ExpectedHarvestDate: expectedHarvestDate,
		Status:              models.PlantingStatusGrowing,
	}

	if err := s.db.Create(planting).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return planting, nil
}

// plantingRecordQuery builds the joined planting listing. Inner joins omit
// plantings whose farmer or crop has been deleted.
func (s *cropService) plantingRecordQuery() *gorm.DB {
	return s.db.Model(&models.Planting{}).
		Select("plantings.id, plantings.farmer_id, plantings.crop_id, " +
			"farmers.name AS farmer_name, crops.name AS crop_name, " +
			"plantings.planting_date, plantings.area_planted, " +
			"plantings.expected_harvest_date, plantings.status").
		Joins("JOIN farmers ON farmers.id = plantings.farmer_id").
		Joins("JOIN crops ON crops.id = plantings.crop_id")
}

// GetAllPlantings retrieves planting records joined with farmer and crop
// names, newest planting date first, optionally filtered by farmer.
func (s *cropService) GetAllPlantings(farmerID *uint) ([]PlantingRecord, error) {
	query := s.plantingRecordQuery().Order("plantings.planting_date DESC")
	if farmerID != nil {
		query = query.Where("plantings.farmer_id = ?", *farmerID)
	}

	var records []PlantingRecord
	if err := query.Scan(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// GetPlantingByID retrieves one planting record with farmer and crop names.
func (s *cropService) GetPlantingByID(id uint) (*PlantingRecord, error) {
	var record PlantingRecord
	res := s.plantingRecordQuery().Where("plantings.id = ?", id).Scan(&record)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrPlantingNotFound
	}
	return &record, nil
}

// UpdatePlantingStatus sets the status of a planting. Any status string is
// accepted, recognized or not, for compatibility with existing data files.
func (s *cropService) UpdatePlantingStatus(id uint, status models.PlantingStatus) error {
	if status == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "status is required")
	}

	res := s.db.Model(&models.Planting{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPlantingNotFound
	}
	return nil
}

// GetCropStatistics returns two independent aggregate sets: all-time
// per-crop planting totals (left join, so unplanted crops appear), and
// per-crop counts restricted to growing plantings.
func (s *cropService) GetCropStatistics() (*CropStatistics, error) {
	var cropStats []CropPlantingStats
	if err := s.db.Model(&models.Crop{}).
		Select("crops.name AS crop_name, COUNT(plantings.id) AS total_plantings, "+
			"SUM(plantings.area_planted) AS total_area, AVG(plantings.area_planted) AS avg_area").
		Joins("LEFT JOIN plantings ON plantings.crop_id = crops.id").
		Group("crops.id, crops.name").
		Order("total_plantings DESC").
		Scan(&cropStats).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var growing []GrowingCropStats
	if err := s.db.Model(&models.Planting{}).
		Select("crops.name AS crop_name, COUNT(*) AS growing_count, "+
			"SUM(plantings.area_planted) AS total_growing_area").
		Joins("JOIN crops ON crops.id = plantings.crop_id").
		Where("plantings.status = ?", models.PlantingStatusGrowing).
		Group("crops.id, crops.name").
		Scan(&growing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &CropStatistics{CropStats: cropStats, GrowingCrops: growing}, nil
}

// GetHarvestSchedule returns growing plantings whose expected harvest date
// falls on or before now + daysAhead, earliest first. Overdue harvests are
// included; plantings without an expected date are not.
func (s *cropService) GetHarvestSchedule(daysAhead int) ([]HarvestEntry, error) {
	if daysAhead <= 0 {
		daysAhead = defaultHarvestWindowDays
	}
	cutoff := time.Now().AddDate(0, 0, daysAhead)

	var entries []HarvestEntry
	if err := s.db.Model(&models.Planting{}).
		Select("plantings.id AS planting_id, farmers.name AS farmer_name, crops.name AS crop_name, "+
			"plantings.planting_date, plantings.expected_harvest_date, "+
			"plantings.area_planted, plantings.status").
		Joins("JOIN farmers ON farmers.id = plantings.farmer_id").
		Joins("JOIN crops ON crops.id = plantings.crop_id").
		Where("plantings.status = ?", models.PlantingStatusGrowing).
		Where("plantings.expected_harvest_date IS NOT NULL").
		Where("plantings.expected_harvest_date <= ?", cutoff).
		Order("plantings.expected_harvest_date").
		Scan(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}
