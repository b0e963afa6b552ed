package repository

import (
	"go-sari-pos/internal/model"

	"gorm.io/gorm"
)

type ServiceTransactionRepository interface {
	Create(tx *gorm.DB, record *model.ServiceTransaction) error
	FindAll() ([]model.ServiceTransaction, error)
	FindByService(service model.ServiceType) ([]model.ServiceTransaction, error)
}

type serviceTransactionRepo struct {
	db *gorm.DB
}

func NewServiceTransactionRepo(db *gorm.DB) ServiceTransactionRepository {
	return &serviceTransactionRepo{db}
}

func (r *serviceTransactionRepo) Create(tx *gorm.DB, record *model.ServiceTransaction) error {
	return tx.Create(record).Error
}

func (r *serviceTransactionRepo) FindAll() ([]model.ServiceTransaction, error) {
	var records []model.ServiceTransaction
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *serviceTransactionRepo) FindByService(service model.ServiceType) ([]model.ServiceTransaction, error) {
	var records []model.ServiceTransaction
	err := r.db.Where("service = ?", service).Order("created_at DESC").Find(&records).Error
	return records, err
}
