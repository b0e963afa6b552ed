package service

import (
	"time"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/report"
	"go-sari-pos/internal/repository"
)

// ReportService re-derives profit figures from the full current record
// sets on every call. Nothing is cached; the window is evaluated against
// the wall clock at request time.
type ReportService interface {
	ProfitStatement(period report.Period) (*report.Statement, error)
	ServiceSummary(service model.ServiceType, period report.Period) (*report.ServiceSummary, error)
	SalesSummary(period report.Period) (*report.SalesSummary, error)
}

type reportService struct {
	saleRepo    repository.SaleRepository
	txRepo      repository.ServiceTransactionRepository
	expenseRepo repository.ExpenseRepository
}

func NewReportService(saleRepo repository.SaleRepository, txRepo repository.ServiceTransactionRepository, expenseRepo repository.ExpenseRepository) ReportService {
	return &reportService{
		saleRepo:    saleRepo,
		txRepo:      txRepo,
		expenseRepo: expenseRepo,
	}
}

func (s *reportService) ProfitStatement(period report.Period) (*report.Statement, error) {
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	services, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	st := report.BuildStatement(period, time.Now(), sales, services, expenses)
	return &st, nil
}

func (s *reportService) ServiceSummary(service model.ServiceType, period report.Period) (*report.ServiceSummary, error) {
	records, err := s.txRepo.FindByService(service)
	if err != nil {
		return nil, err
	}
	summary := report.SummarizeServiceTransactions(records, period, time.Now())
	return &summary, nil
}

func (s *reportService) SalesSummary(period report.Period) (*report.SalesSummary, error) {
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	summary := report.SummarizeSales(sales, period, time.Now())
	return &summary, nil
}
