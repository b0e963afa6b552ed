package model

import "github.com/google/uuid"

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
)

// Sale is one point-of-sale checkout line. UnitPrice and ProfitPerUnit are
// snapshots taken from the product row at sale time, so later cost or price
// edits never rewrite historical profit.
type Sale struct {
	BaseModel
	ProductID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product       *Product      `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	Quantity      int           `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice     float64       `gorm:"not null" json:"unit_price"`
	TotalAmount   float64       `gorm:"not null" json:"total_amount"` // quantity * unit_price
	ProfitPerUnit float64       `gorm:"not null" json:"profit_per_unit"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null;default:'cash'" json:"payment_method"`
}

// Profit is the margin earned on this line (tubo snapshot * quantity).
func (s *Sale) Profit() float64 {
	return s.ProfitPerUnit * float64(s.Quantity)
}
