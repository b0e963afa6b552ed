package model

// Expense is one recorded outflow (gastos).
type Expense struct {
	BaseModel
	Category    string  `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Amount      float64 `gorm:"not null" json:"amount" validate:"required,gt=0"`
	Description string  `gorm:"type:text" json:"description"`
}
