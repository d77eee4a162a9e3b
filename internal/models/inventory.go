package models

// InventoryItem represents a stocked supply item (seeds, fertilizer, fuel).
type InventoryItem struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Category    string   `json:"category"`
	Quantity    int      `json:"quantity"`
	Unit        string   `json:"unit"`
	CostPerUnit *float64 `json:"cost_per_unit,omitempty"`
	Supplier    string   `json:"supplier"`
}

// TableName keeps the table name of the original data files.
func (InventoryItem) TableName() string {
	return "inventory"
}
