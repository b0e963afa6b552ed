package service

import (
	"fmt"
	"strings"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/repository"
	"go-sari-pos/internal/tariff"

	"gorm.io/gorm"
)

// AgentService records the sub-agent lines: mobile-load top-ups, e-wallet
// cash-in/out and bills payments. The fee is computed from the tariff table
// at creation and stored on the row; it is never recomputed afterwards.
type AgentService interface {
	RecordTransaction(service model.ServiceType, subtype string, amount float64, userEmail string) (*model.ServiceTransaction, error)
	GetAllTransactions() ([]model.ServiceTransaction, error)
	GetTransactionsByService(service model.ServiceType) ([]model.ServiceTransaction, error)
}

type agentService struct {
	txRepo   repository.ServiceTransactionRepository
	db       *gorm.DB
	activity ActivityService
}

func NewAgentService(txRepo repository.ServiceTransactionRepository, db *gorm.DB, activity ActivityService) AgentService {
	return &agentService{
		txRepo:   txRepo,
		db:       db,
		activity: activity,
	}
}

func (s *agentService) RecordTransaction(serviceType model.ServiceType, subtype string, amount float64, userEmail string) (*model.ServiceTransaction, error) {
	switch serviceType {
	case model.ServiceLoad, model.ServiceEwallet, model.ServiceBills:
	default:
		return nil, fmt.Errorf("%w: service", ErrMissingField)
	}
	if strings.TrimSpace(subtype) == "" {
		return nil, fmt.Errorf("%w: subtype", ErrMissingField)
	}
	if amount < tariff.MinimumAmount {
		return nil, fmt.Errorf("%w: got %.2f, minimum is %d", ErrInvalidAmount, amount, tariff.MinimumAmount)
	}

	record := &model.ServiceTransaction{
		Service: serviceType,
		Subtype: subtype,
		Amount:  amount,
		Fee:     tariff.FeeFor(serviceType, amount),
	}
	record.CreatedBy = userEmail
	record.UpdatedBy = userEmail

	if err := s.txRepo.Create(s.db, record); err != nil {
		return nil, err
	}

	s.activity.Log("service_transaction_recorded",
		fmt.Sprintf("Recorded %s %s of ₱%.2f (kita ₱%.2f)", record.Service, record.Subtype, record.Amount, record.Fee),
		userEmail,
		model.Payload{
			"transaction_id": record.ID,
			"service":        record.Service,
			"subtype":        record.Subtype,
			"amount":         record.Amount,
			"fee":            record.Fee,
		})
	return record, nil
}

func (s *agentService) GetAllTransactions() ([]model.ServiceTransaction, error) {
	return s.txRepo.FindAll()
}

func (s *agentService) GetTransactionsByService(service model.ServiceType) ([]model.ServiceTransaction, error) {
	return s.txRepo.FindByService(service)
}
