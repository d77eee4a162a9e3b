package models

// Crop represents a crop type that can be planted.
// Crops are immutable once created; there is no update operation.
type Crop struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Name         string   `gorm:"not null" json:"name"`
	Variety      string   `json:"variety"`
	GrowthPeriod *int     `json:"growth_period,omitempty"`
	YieldPerAcre *float64 `json:"yield_per_acre,omitempty"`
	PricePerUnit *float64 `json:"price_per_unit,omitempty"`

	Plantings []Planting `gorm:"foreignKey:CropID" json:"plantings,omitempty"`
}
