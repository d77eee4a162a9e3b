package models

import (
	"time"

	"gorm.io/gorm"
)

// Farmer represents a registered farmer and their farm.
type Farmer struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	Address          string    `json:"address"`
	FarmSize         *float64  `json:"farm_size,omitempty"`
	RegistrationDate time.Time `json:"registration_date"`

	// Relationships. Declared only; deleting a farmer does not cascade,
	// so plantings and transactions may reference a missing farmer.
	Plantings    []Planting    `gorm:"foreignKey:FarmerID" json:"plantings,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:FarmerID" json:"transactions,omitempty"`
}

// BeforeCreate hook defaults the registration date to the creation date.
func (f *Farmer) BeforeCreate(tx *gorm.DB) error {
	if f.RegistrationDate.IsZero() {
		f.RegistrationDate = time.Now()
	}
	return nil
}
