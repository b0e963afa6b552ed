package service

import (
	"testing"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPOS(t *testing.T) (POSService, *repositoryBundle) {
	t.Helper()
	db := newTestDB(t)
	repos := &repositoryBundle{
		db:       db,
		products: repository.NewProductRepo(db),
		sales:    repository.NewSaleRepo(db),
	}
	return NewPOSService(repos.products, repos.sales, db, noopActivity{}), repos
}

type repositoryBundle struct {
	db       *gorm.DB
	products repository.ProductRepository
	sales    repository.SaleRepository
}

func TestCheckoutRecordsSaleAndDecrementsStock(t *testing.T) {
	pos, repos := newPOS(t)
	product := seedProduct(t, repos.db, "Lucky Me", 8, 10, 20)

	sales, err := pos.Checkout([]CartLine{{ProductID: product.ID, Quantity: 5}}, model.PaymentCash, "admin@tindahan.local")
	require.NoError(t, err)
	require.Len(t, sales, 1)

	sale := sales[0]
	require.Equal(t, 5, sale.Quantity)
	require.Equal(t, 10.0, sale.UnitPrice)
	require.Equal(t, 50.0, sale.TotalAmount)
	require.Equal(t, 2.0, sale.ProfitPerUnit) // tubo snapshot
	require.Equal(t, 10.0, sale.Profit())

	updated, err := repos.products.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 15, updated.Stock)
}

func TestCheckoutRejectsInsufficientStock(t *testing.T) {
	pos, repos := newPOS(t)
	product := seedProduct(t, repos.db, "Sky Flakes", 5, 7, 3)

	_, err := pos.Checkout([]CartLine{{ProductID: product.ID, Quantity: 4}}, model.PaymentCash, "admin@tindahan.local")
	require.ErrorIs(t, err, ErrInsufficientStock)

	// Nothing written, stock untouched.
	updated, err := repos.products.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 3, updated.Stock)

	all, err := repos.sales.FindAll()
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestCheckoutRollsBackWholeCartOnFailure(t *testing.T) {
	pos, repos := newPOS(t)
	plenty := seedProduct(t, repos.db, "Kopiko", 4, 5, 50)
	scarce := seedProduct(t, repos.db, "Chippy", 6, 8, 1)

	_, err := pos.Checkout([]CartLine{
		{ProductID: plenty.ID, Quantity: 10},
		{ProductID: scarce.ID, Quantity: 2},
	}, model.PaymentCash, "admin@tindahan.local")
	require.ErrorIs(t, err, ErrInsufficientStock)

	// The first line must have been rolled back with the second.
	updated, err := repos.products.FindByID(plenty.ID)
	require.NoError(t, err)
	require.Equal(t, 50, updated.Stock)

	all, err := repos.sales.FindAll()
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestRepeatedCheckoutsSumToStockDelta(t *testing.T) {
	pos, repos := newPOS(t)
	product := seedProduct(t, repos.db, "C2", 10, 13, 30)

	quantities := []int{3, 7, 2, 5}
	total := 0
	for _, q := range quantities {
		_, err := pos.Checkout([]CartLine{{ProductID: product.ID, Quantity: q}}, model.PaymentCash, "admin@tindahan.local")
		require.NoError(t, err)
		total += q
	}

	updated, err := repos.products.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 30-total, updated.Stock)
}

func TestCheckoutValidation(t *testing.T) {
	pos, _ := newPOS(t)

	_, err := pos.Checkout(nil, model.PaymentCash, "admin@tindahan.local")
	require.ErrorIs(t, err, ErrEmptyCart)

	_, err = pos.Checkout([]CartLine{{ProductID: uuid.Nil, Quantity: 1}}, model.PaymentCash, "admin@tindahan.local")
	require.ErrorIs(t, err, ErrMissingField)

	_, err = pos.Checkout([]CartLine{{ProductID: uuid.New(), Quantity: 0}}, model.PaymentCash, "admin@tindahan.local")
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = pos.Checkout([]CartLine{{ProductID: uuid.New(), Quantity: 1}}, model.PaymentCash, "admin@tindahan.local")
	require.ErrorIs(t, err, ErrProductNotFound)
}
