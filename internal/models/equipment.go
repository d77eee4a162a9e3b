package models

import "time"

// EquipmentStatus represents the operational state of a piece of equipment.
type EquipmentStatus string

const (
	EquipmentStatusActive  EquipmentStatus = "Active"
	EquipmentStatusRepair  EquipmentStatus = "Under Repair"
	EquipmentStatusRetired EquipmentStatus = "Retired"
)

// Equipment represents a piece of farm equipment.
type Equipment struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"not null" json:"name"`
	Type         string          `json:"type"`
	PurchaseDate *time.Time      `json:"purchase_date,omitempty"`
	Cost         *float64        `json:"cost,omitempty"`
	Status       EquipmentStatus `gorm:"default:Active" json:"status"`
}
