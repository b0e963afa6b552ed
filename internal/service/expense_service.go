package service

import (
	"fmt"
	"strings"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/repository"

	"github.com/google/uuid"
)

type ExpenseService interface {
	AddExpense(category string, amount float64, description, userEmail string) (*model.Expense, error)
	DeleteExpense(id uuid.UUID, userEmail string) error
	GetAllExpenses() ([]model.Expense, error)
}

type expenseService struct {
	repo     repository.ExpenseRepository
	activity ActivityService
}

func NewExpenseService(repo repository.ExpenseRepository, activity ActivityService) ExpenseService {
	return &expenseService{repo: repo, activity: activity}
}

func (s *expenseService) AddExpense(category string, amount float64, description, userEmail string) (*model.Expense, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category", ErrMissingField)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: expense amount must be positive", ErrInvalidAmount)
	}

	expense := &model.Expense{
		Category:    category,
		Amount:      amount,
		Description: description,
	}
	expense.CreatedBy = userEmail
	expense.UpdatedBy = userEmail

	if err := s.repo.Create(expense); err != nil {
		return nil, err
	}

	s.activity.Log("expense_added",
		fmt.Sprintf("Gastos of ₱%.2f for %s", expense.Amount, expense.Category),
		userEmail,
		model.Payload{"expense_id": expense.ID, "category": expense.Category, "amount": expense.Amount})
	return expense, nil
}

func (s *expenseService) DeleteExpense(id uuid.UUID, userEmail string) error {
	if err := s.repo.Delete(id, userEmail); err != nil {
		return err
	}

	s.activity.Log("expense_deleted",
		"Removed a gastos record",
		userEmail,
		model.Payload{"expense_id": id})
	return nil
}

func (s *expenseService) GetAllExpenses() ([]model.Expense, error) {
	return s.repo.FindAll()
}
