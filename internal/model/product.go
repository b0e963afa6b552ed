package model

// Product is a catalog entry of the store ("paninda").
// CostPerUnit and ProfitPerUnit (tubo) are derived on every write:
// cost_per_unit = cost_per_pack / quantity_per_pack,
// profit_per_unit = selling_price - cost_per_unit.
type Product struct {
	BaseModel
	Name            string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Type            string  `gorm:"type:varchar(100);not null" json:"type" validate:"required"`
	Size            string  `gorm:"type:varchar(50)" json:"size"`
	QuantityPerPack int     `gorm:"not null;default:1" json:"quantity_per_pack" validate:"gt=0"`
	CostPerPack     float64 `gorm:"not null" json:"cost_per_pack" validate:"gte=0"` // puhunan per pack
	CostPerUnit     float64 `gorm:"not null" json:"cost_per_unit"`                  // puhunan each
	SellingPrice    float64 `gorm:"not null" json:"selling_price" validate:"gte=0"`
	ProfitPerUnit   float64 `gorm:"not null" json:"profit_per_unit"` // tubo
	Stock           int     `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
}

// RecalculateDerived refreshes cost_per_unit and profit_per_unit from the
// pack cost and selling price. Called by the service on create and update.
func (p *Product) RecalculateDerived() {
	if p.QuantityPerPack > 0 {
		p.CostPerUnit = p.CostPerPack / float64(p.QuantityPerPack)
	}
	p.ProfitPerUnit = p.SellingPrice - p.CostPerUnit
}
