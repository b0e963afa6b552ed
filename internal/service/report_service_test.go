package service

import (
	"testing"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/report"
	"go-sari-pos/internal/repository"

	"github.com/stretchr/testify/require"
)

// End-to-end scenario: product with cost 8 / price 10 (tubo 2) and stock 20;
// sell 5 units; record a 200-peso load (fee 10) and a 600-peso e-wallet
// cash-in (fee 20); record a 50-peso gastos. Today's statement must read
// gross 40, expenses 50, net -10.
func TestProfitStatementEndToEnd(t *testing.T) {
	db := newTestDB(t)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	txRepo := repository.NewServiceTransactionRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)

	pos := NewPOSService(productRepo, saleRepo, db, noopActivity{})
	agent := NewAgentService(txRepo, db, noopActivity{})
	expenses := NewExpenseService(expenseRepo, noopActivity{})
	reports := NewReportService(saleRepo, txRepo, expenseRepo)

	product := seedProduct(t, db, "Palamig", 8, 10, 20)

	_, err := pos.Checkout([]CartLine{{ProductID: product.ID, Quantity: 5}}, model.PaymentCash, "admin@tindahan.local")
	require.NoError(t, err)

	updated, err := productRepo.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 15, updated.Stock)

	_, err = agent.RecordTransaction(model.ServiceLoad, "Globe", 200, "admin@tindahan.local")
	require.NoError(t, err)
	_, err = agent.RecordTransaction(model.ServiceEwallet, "cash_in", 600, "admin@tindahan.local")
	require.NoError(t, err)
	_, err = expenses.AddExpense("kuryente", 50, "", "admin@tindahan.local")
	require.NoError(t, err)

	st, err := reports.ProfitStatement(report.PeriodToday)
	require.NoError(t, err)
	require.Equal(t, 10.0, st.Retail)
	require.Equal(t, 10.0, st.Load)
	require.Equal(t, 20.0, st.Ewallet)
	require.Equal(t, 0.0, st.Bills)
	require.Equal(t, 40.0, st.GrossProfit)
	require.Equal(t, 50.0, st.Expenses)
	require.Equal(t, -10.0, st.NetProfit)
}

// Re-running the report against an unchanged record set returns identical
// totals.
func TestProfitStatementIdempotent(t *testing.T) {
	db := newTestDB(t)
	saleRepo := repository.NewSaleRepo(db)
	txRepo := repository.NewServiceTransactionRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)

	agent := NewAgentService(txRepo, db, noopActivity{})
	reports := NewReportService(saleRepo, txRepo, expenseRepo)

	_, err := agent.RecordTransaction(model.ServiceBills, "Maynilad", 400, "admin@tindahan.local")
	require.NoError(t, err)

	first, err := reports.ProfitStatement(report.PeriodWeek)
	require.NoError(t, err)
	second, err := reports.ProfitStatement(report.PeriodWeek)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 10.0, first.Bills)
}

// Historical retail profit must come from the tubo snapshot on the sale
// row, not from the product's current margin.
func TestRetailProfitUsesSaleSnapshot(t *testing.T) {
	db := newTestDB(t)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	txRepo := repository.NewServiceTransactionRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)

	pos := NewPOSService(productRepo, saleRepo, db, noopActivity{})
	reports := NewReportService(saleRepo, txRepo, expenseRepo)

	product := seedProduct(t, db, "Yelo", 8, 10, 20)
	_, err := pos.Checkout([]CartLine{{ProductID: product.ID, Quantity: 5}}, model.PaymentCash, "admin@tindahan.local")
	require.NoError(t, err)

	// Raise the cost after the sale; tubo drops to 0.5 for future sales.
	product.CostPerPack = 9.5
	product.RecalculateDerived()
	require.NoError(t, productRepo.Update(product))

	st, err := reports.ProfitStatement(report.PeriodToday)
	require.NoError(t, err)
	require.Equal(t, 10.0, st.Retail) // still 5 * 2, not 5 * 0.5
}
