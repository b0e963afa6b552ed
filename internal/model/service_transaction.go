package model

type ServiceType string

const (
	ServiceLoad    ServiceType = "load"
	ServiceEwallet ServiceType = "ewallet"
	ServiceBills   ServiceType = "bills"
)

// ServiceTransaction is one recorded sub-agent event: a mobile-load top-up,
// an e-wallet cash-in/cash-out, or a bills payment. Fee (kita) is computed
// from the tariff table once at creation and never recomputed, even if the
// tariff brackets change later.
type ServiceTransaction struct {
	BaseModel
	Service ServiceType `gorm:"type:varchar(10);not null;index" json:"service" validate:"required,oneof=load ewallet bills"`
	Subtype string      `gorm:"type:varchar(100);not null" json:"subtype" validate:"required"` // network / cash_in|cash_out / biller
	Amount  float64     `gorm:"not null" json:"amount" validate:"gt=0"`
	Fee     float64     `gorm:"not null" json:"fee"` // kita/commission
}
