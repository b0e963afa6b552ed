package service

import (
	"fmt"
	"testing"

	"go-sari-pos/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database to avoid cross-test
// interference.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.Sale{},
		&model.ServiceTransaction{},
		&model.Credit{},
		&model.Expense{},
		&model.Liability{},
		&model.InventorySnapshot{},
		&model.ActivityLog{},
		&model.User{},
	))
	return db
}

// noopActivity keeps tests deterministic; the audit sink is fire-and-forget
// and exercised separately.
type noopActivity struct{}

func (noopActivity) Log(actionType, description, userEmail string, data model.Payload) {}

func (noopActivity) Recent(limit int) ([]model.ActivityLog, error) { return nil, nil }

// seedProduct inserts a product with derived fields computed.
func seedProduct(t *testing.T, db *gorm.DB, name string, costPerUnit, sellingPrice float64, stock int) *model.Product {
	t.Helper()
	p := &model.Product{
		Name:            name,
		Type:            "snack",
		QuantityPerPack: 1,
		CostPerPack:     costPerUnit,
		SellingPrice:    sellingPrice,
		Stock:           stock,
	}
	p.RecalculateDerived()
	require.NoError(t, db.Create(p).Error)
	return p
}
