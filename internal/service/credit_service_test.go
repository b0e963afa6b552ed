package service

import (
	"testing"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type creditFixture struct {
	db       *gorm.DB
	service  CreditService
	products repository.ProductRepository
	sales    repository.SaleRepository
	txs      repository.ServiceTransactionRepository
	credits  repository.CreditRepository
}

func newCreditFixture(t *testing.T) *creditFixture {
	t.Helper()
	db := newTestDB(t)
	f := &creditFixture{
		db:       db,
		products: repository.NewProductRepo(db),
		sales:    repository.NewSaleRepo(db),
		txs:      repository.NewServiceTransactionRepo(db),
		credits:  repository.NewCreditRepo(db),
	}
	f.service = NewCreditService(f.credits, f.products, f.sales, f.txs, db, noopActivity{})
	return f
}

func TestGrantTakesStockAndSnapshotsPricing(t *testing.T) {
	f := newCreditFixture(t)
	product := seedProduct(t, f.db, "Bear Brand", 8, 10, 20)

	credit, err := f.service.Grant("Aling Nena", []model.CreditItem{
		{Kind: model.CreditItemRetail, ProductID: product.ID, Quantity: 3},
		{Kind: model.CreditItemLoad, Subtype: "Globe", Amount: 100},
	}, "admin@tindahan.local")
	require.NoError(t, err)

	require.Equal(t, 130.0, credit.AmountOwed) // 3*10 + 100
	require.False(t, credit.IsPaid)
	require.Nil(t, credit.PaidDate)

	// Retail line got price and tubo snapshots at grant time.
	require.Equal(t, 10.0, credit.Items[0].UnitPrice)
	require.Equal(t, 2.0, credit.Items[0].ProfitPerUnit)
	require.Equal(t, "Bear Brand", credit.Items[0].ProductName)

	// Stock is taken at grant, like a cash sale.
	updated, err := f.products.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 17, updated.Stock)

	// But no revenue rows exist yet.
	sales, err := f.sales.FindAll()
	require.NoError(t, err)
	require.Empty(t, sales)
}

func TestGrantInsufficientStockRollsBack(t *testing.T) {
	f := newCreditFixture(t)
	product := seedProduct(t, f.db, "Milo", 9, 12, 2)

	_, err := f.service.Grant("Mang Tomas", []model.CreditItem{
		{Kind: model.CreditItemRetail, ProductID: product.ID, Quantity: 5},
	}, "admin@tindahan.local")
	require.ErrorIs(t, err, ErrInsufficientStock)

	updated, err := f.products.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 2, updated.Stock)

	credits, err := f.credits.FindAll()
	require.NoError(t, err)
	require.Empty(t, credits)
}

func TestMarkAsPaidEmitsOneRevenueRowPerLine(t *testing.T) {
	f := newCreditFixture(t)
	product := seedProduct(t, f.db, "Sardinas", 14, 18, 10)

	credit, err := f.service.Grant("Ka Pedro", []model.CreditItem{
		{Kind: model.CreditItemRetail, ProductID: product.ID, Quantity: 2},
		{Kind: model.CreditItemLoad, Subtype: "Smart", Amount: 50},
		{Kind: model.CreditItemEwallet, Subtype: "cash_in", Amount: 600},
		{Kind: model.CreditItemBills, Subtype: "Meralco", Amount: 800},
	}, "admin@tindahan.local")
	require.NoError(t, err)

	paid, err := f.service.MarkAsPaid(credit.ID, "admin@tindahan.local")
	require.NoError(t, err)
	require.True(t, paid.IsPaid)
	require.NotNil(t, paid.PaidDate)
	require.False(t, paid.PaidDate.Before(paid.CreatedAt))

	// One revenue row per cart line.
	sales, err := f.sales.FindAll()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.Equal(t, model.PaymentCredit, sales[0].PaymentMethod)
	require.Equal(t, 36.0, sales[0].TotalAmount)
	require.Equal(t, 8.0, sales[0].Profit()) // 2 * tubo 4

	txs, err := f.txs.FindAll()
	require.NoError(t, err)
	require.Len(t, txs, 3)

	// Fees are recomputed from the tariff table at settlement.
	feeBySubtype := map[string]float64{}
	for _, tx := range txs {
		feeBySubtype[tx.Subtype] = tx.Fee
	}
	require.Equal(t, 3.0, feeBySubtype["Smart"])      // load 50
	require.Equal(t, 20.0, feeBySubtype["cash_in"])   // ewallet 600
	require.Equal(t, 20.0, feeBySubtype["Meralco"])   // bills 800

	// Settlement must not take stock a second time.
	updated, err := f.products.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 8, updated.Stock)
}

func TestMarkAsPaidTwiceIsRejected(t *testing.T) {
	f := newCreditFixture(t)
	product := seedProduct(t, f.db, "Suka", 10, 12, 5)

	credit, err := f.service.Grant("Aling Rosa", []model.CreditItem{
		{Kind: model.CreditItemRetail, ProductID: product.ID, Quantity: 1},
	}, "admin@tindahan.local")
	require.NoError(t, err)

	_, err = f.service.MarkAsPaid(credit.ID, "admin@tindahan.local")
	require.NoError(t, err)

	_, err = f.service.MarkAsPaid(credit.ID, "admin@tindahan.local")
	require.ErrorIs(t, err, ErrCreditAlreadyPaid)

	// No duplicate revenue rows from the rejected second call.
	sales, err := f.sales.FindAll()
	require.NoError(t, err)
	require.Len(t, sales, 1)
}

func TestUnmarkIsAnExplicitOverride(t *testing.T) {
	f := newCreditFixture(t)
	product := seedProduct(t, f.db, "Toyo", 10, 12, 5)

	credit, err := f.service.Grant("Ka Islaw", []model.CreditItem{
		{Kind: model.CreditItemRetail, ProductID: product.ID, Quantity: 1},
	}, "admin@tindahan.local")
	require.NoError(t, err)

	_, err = f.service.Unmark(credit.ID, "admin@tindahan.local")
	require.ErrorIs(t, err, ErrCreditNotPaid)

	_, err = f.service.MarkAsPaid(credit.ID, "admin@tindahan.local")
	require.NoError(t, err)

	reverted, err := f.service.Unmark(credit.ID, "admin@tindahan.local")
	require.NoError(t, err)
	require.False(t, reverted.IsPaid)
	require.Nil(t, reverted.PaidDate)

	// The override does not claw back the emitted revenue rows.
	sales, err := f.sales.FindAll()
	require.NoError(t, err)
	require.Len(t, sales, 1)
}

func TestCustomerSummariesGroupCaseInsensitively(t *testing.T) {
	f := newCreditFixture(t)
	product := seedProduct(t, f.db, "Asin", 3, 5, 50)

	for _, name := range []string{"aling nena", "Aling Nena", "ALING NENA", "Mang Ben"} {
		_, err := f.service.Grant(name, []model.CreditItem{
			{Kind: model.CreditItemRetail, ProductID: product.ID, Quantity: 1},
		}, "admin@tindahan.local")
		require.NoError(t, err)
	}

	summaries, err := f.service.GetCustomerSummaries()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	total, err := f.service.GetTotalUnpaid()
	require.NoError(t, err)
	require.Equal(t, 20.0, total) // 4 grants * 5
}

func TestGrantValidation(t *testing.T) {
	f := newCreditFixture(t)

	_, err := f.service.Grant("", []model.CreditItem{{Kind: model.CreditItemLoad, Subtype: "Globe", Amount: 50}}, "admin@tindahan.local")
	require.ErrorIs(t, err, ErrMissingField)

	_, err = f.service.Grant("Aling Nena", nil, "admin@tindahan.local")
	require.ErrorIs(t, err, ErrEmptyCart)

	_, err = f.service.Grant("Aling Nena", []model.CreditItem{{Kind: model.CreditItemLoad, Subtype: "Globe", Amount: 2}}, "admin@tindahan.local")
	require.ErrorIs(t, err, ErrInvalidAmount)
}
