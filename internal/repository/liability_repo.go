package repository

import (
	"go-sari-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LiabilityRepository interface {
	Create(liability *model.Liability) error
	FindAll() ([]model.Liability, error)
	FindByID(id uuid.UUID) (*model.Liability, error)
	Update(liability *model.Liability) error
}

type liabilityRepo struct {
	db *gorm.DB
}

func NewLiabilityRepo(db *gorm.DB) LiabilityRepository {
	return &liabilityRepo{db}
}

func (r *liabilityRepo) Create(liability *model.Liability) error {
	return r.db.Create(liability).Error
}

func (r *liabilityRepo) FindAll() ([]model.Liability, error) {
	var liabilities []model.Liability
	err := r.db.Order("created_at DESC").Find(&liabilities).Error
	return liabilities, err
}

func (r *liabilityRepo) FindByID(id uuid.UUID) (*model.Liability, error) {
	var liability model.Liability
	err := r.db.First(&liability, "id = ?", id).Error
	return &liability, err
}

func (r *liabilityRepo) Update(liability *model.Liability) error {
	return r.db.Save(liability).Error
}
