package models

import (
	"time"

	"gorm.io/gorm"
)

// TransactionType represents the direction of a financial transaction.
// Open enumeration: the sign of the amount is not enforced either, so an
// "income" row with a negative amount is representable.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction recorded against a farmer.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	FarmerID    uint            `json:"farmer_id"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`

	Farmer Farmer `gorm:"foreignKey:FarmerID" json:"-"`
}

// BeforeCreate hook defaults the transaction date to the creation date.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	return nil
}
