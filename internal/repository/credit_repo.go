package repository

import (
	"go-sari-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreditRepository interface {
	Create(tx *gorm.DB, credit *model.Credit) error
	FindAll() ([]model.Credit, error)
	FindByID(id uuid.UUID) (*model.Credit, error)
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Credit, error)
	Update(tx *gorm.DB, credit *model.Credit) error
}

type creditRepo struct {
	db *gorm.DB
}

func NewCreditRepo(db *gorm.DB) CreditRepository {
	return &creditRepo{db}
}

func (r *creditRepo) Create(tx *gorm.DB, credit *model.Credit) error {
	return tx.Create(credit).Error
}

func (r *creditRepo) FindAll() ([]model.Credit, error) {
	var credits []model.Credit
	err := r.db.Order("created_at DESC").Find(&credits).Error
	return credits, err
}

func (r *creditRepo) FindByID(id uuid.UUID) (*model.Credit, error) {
	var credit model.Credit
	err := r.db.First(&credit, "id = ?", id).Error
	return &credit, err
}

// FindByIDForUpdate locks the row so settlement cannot race a second
// settlement of the same utang.
func (r *creditRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Credit, error) {
	var credit model.Credit
	err := tx.Set("gorm:query_option", "FOR UPDATE").First(&credit, "id = ?", id).Error
	return &credit, err
}

func (r *creditRepo) Update(tx *gorm.DB, credit *model.Credit) error {
	return tx.Save(credit).Error
}
