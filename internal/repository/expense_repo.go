package repository

import (
	"go-sari-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	FindAll() ([]model.Expense, error)
	Delete(id uuid.UUID, deletedBy string) error
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) FindAll() ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.Order("created_at DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) Delete(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.Expense{}).Where("id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Expense{}, "id = ?", id).Error
}
