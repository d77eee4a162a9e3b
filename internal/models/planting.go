package models

import "time"

// PlantingStatus represents the lifecycle state of a planting.
// It is an open enumeration: these are the recognized values, but
// UpdatePlantingStatus accepts any string for compatibility with
// existing data files.
type PlantingStatus string

const (
	PlantingStatusPlanned   PlantingStatus = "Planned"
	PlantingStatusGrowing   PlantingStatus = "Growing"
	PlantingStatusHarvested PlantingStatus = "Harvested"
	PlantingStatusFailed    PlantingStatus = "Failed"
)

// Planting links a farmer, a crop, a planted area, and a growing-cycle
// timeline. The expected harvest date is derived from the crop's growth
// period when not supplied explicitly.
type Planting struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	FarmerID            uint           `json:"farmer_id"`
	CropID              uint           `json:"crop_id"`
	PlantingDate        time.Time      `json:"planting_date"`
	AreaPlanted         float64        `json:"area_planted"`
	ExpectedHarvestDate *time.Time     `json:"expected_harvest_date,omitempty"`
	Status              PlantingStatus `gorm:"default:Growing" json:"status"`

	Farmer Farmer `gorm:"foreignKey:FarmerID" json:"-"`
	Crop   Crop   `gorm:"foreignKey:CropID" json:"-"`
}
