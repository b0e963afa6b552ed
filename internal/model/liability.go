package model

import "time"

// LiabilityStatus tracks whether an obligation has been settled.
type LiabilityStatus string

const (
	LiabilityPaid   LiabilityStatus = "paid"
	LiabilityUnpaid LiabilityStatus = "unpaid"
)

// Liability is a named obligation of the store itself, like supplier debt
// or borrowed capital. Distinct from Credit: utang is what customers owe
// the store, a Liability is what the store owes somebody else.
type Liability struct {
	BaseModel
	Type           string          `gorm:"type:varchar(100);not null" json:"type" validate:"required"`
	PersonInvolved string          `gorm:"type:varchar(255);not null" json:"person_involved" validate:"required"`
	Amount         float64         `gorm:"not null" json:"amount" validate:"required,gt=0"`
	Description    string          `gorm:"type:text" json:"description"`
	Status         LiabilityStatus `gorm:"type:varchar(10);not null;default:'unpaid'" json:"status"`
	DueDate        *time.Time      `gorm:"type:date" json:"due_date,omitempty"`
}
