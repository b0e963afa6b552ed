package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type CreditItemKind string

const (
	CreditItemRetail  CreditItemKind = "retail"
	CreditItemLoad    CreditItemKind = "load"
	CreditItemEwallet CreditItemKind = "ewallet"
	CreditItemBills   CreditItemKind = "bills"
)

// CreditItem is one line of an utang cart. Kind selects which fields are
// meaningful: retail lines carry product data, service lines carry
// subtype + amount. Fees are never stored on the line; settlement always
// recomputes them from the tariff table.
type CreditItem struct {
	Kind CreditItemKind `json:"kind"`

	// retail
	ProductID     uuid.UUID `json:"product_id,omitempty"`
	ProductName   string    `json:"product_name,omitempty"`
	Quantity      int       `json:"quantity,omitempty"`
	UnitPrice     float64   `json:"unit_price,omitempty"`
	ProfitPerUnit float64   `json:"profit_per_unit,omitempty"`

	// load / ewallet / bills
	Subtype string  `json:"subtype,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
}

// Total is the peso value this line adds to the amount owed.
func (i CreditItem) Total() float64 {
	if i.Kind == CreditItemRetail {
		return i.UnitPrice * float64(i.Quantity)
	}
	return i.Amount
}

// CreditItems is stored as a single JSONB column.
type CreditItems []CreditItem

func (items CreditItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *CreditItems) Scan(value interface{}) error {
	if value == nil {
		*items = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return errors.New("unsupported type for CreditItems")
	}
}

// Credit is one customer utang record. CustomerName is free text; grouping
// into customer profiles matches names case-insensitively.
type Credit struct {
	BaseModel
	CustomerName string      `gorm:"type:varchar(255);not null;index" json:"customer_name" validate:"required"`
	AmountOwed   float64     `gorm:"not null" json:"amount_owed"`
	Items        CreditItems `gorm:"type:jsonb;not null" json:"items"`
	IsPaid       bool        `gorm:"not null;default:false" json:"is_paid"`
	PaidDate     *time.Time  `json:"paid_date,omitempty"`
}
