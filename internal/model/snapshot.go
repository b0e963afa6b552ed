package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// SnapshotItem is a denormalized copy of one product at capture time.
type SnapshotItem struct {
	ProductName   string  `json:"product_name"`
	ProductType   string  `json:"product_type"`
	Stock         int     `json:"stock"`
	CostPerUnit   float64 `json:"cost_per_unit"`
	SellingPrice  float64 `json:"selling_price"`
	ProfitPerUnit float64 `json:"profit_per_unit"`
}

type SnapshotItems []SnapshotItem

func (items SnapshotItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *SnapshotItems) Scan(value interface{}) error {
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
		return errors.New("unsupported type for SnapshotItems")
	}
}

// InventorySnapshot is an immutable point-in-time copy of the whole product
// list, used for period-over-period inventory comparison.
type InventorySnapshot struct {
	BaseModel
	SnapshotDate time.Time     `gorm:"type:date;not null" json:"snapshot_date"`
	Items        SnapshotItems `gorm:"type:jsonb;not null" json:"items"`
	TotalItems   int           `gorm:"not null" json:"total_items"` // sum of stock across items
}
