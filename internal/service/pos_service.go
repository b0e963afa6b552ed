package service

import (
	"errors"
	"fmt"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartLine is one product line of a checkout request.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// POSService handles retail checkout. Each cart line produces one sale row
// and one stock decrement, all inside a single database transaction so a
// crash can never leave a sale recorded without its stock taken.
type POSService interface {
	Checkout(lines []CartLine, payment model.PaymentMethod, userEmail string) ([]model.Sale, error)
	GetAllSales() ([]model.Sale, error)
}

type posService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	db          *gorm.DB
	activity    ActivityService
}

func NewPOSService(pRepo repository.ProductRepository, sRepo repository.SaleRepository, db *gorm.DB, activity ActivityService) POSService {
	return &posService{
		productRepo: pRepo,
		saleRepo:    sRepo,
		db:          db,
		activity:    activity,
	}
}

func (s *posService) Checkout(lines []CartLine, payment model.PaymentMethod, userEmail string) ([]model.Sale, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if payment == "" {
		payment = model.PaymentCash
	}
	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return nil, fmt.Errorf("%w: product_id", ErrMissingField)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidAmount)
		}
	}

	var sales []model.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			var product model.Product
			if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}

			if product.Stock < line.Quantity {
				return fmt.Errorf("%w: '%s' has %d left, wanted %d", ErrInsufficientStock, product.Name, product.Stock, line.Quantity)
			}

			sale := model.Sale{
				ProductID:     product.ID,
				Quantity:      line.Quantity,
				UnitPrice:     product.SellingPrice,
				TotalAmount:   product.SellingPrice * float64(line.Quantity),
				ProfitPerUnit: product.ProfitPerUnit,
				PaymentMethod: payment,
			}
			sale.CreatedBy = userEmail
			sale.UpdatedBy = userEmail

			if err := s.saleRepo.Create(tx, &sale); err != nil {
				return err
			}
			if err := s.productRepo.UpdateStock(tx, product.ID, product.Stock-line.Quantity, userEmail); err != nil {
				return err
			}
			sales = append(sales, sale)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var total float64
	for _, sale := range sales {
		total += sale.TotalAmount
	}
	s.activity.Log("sale_recorded",
		fmt.Sprintf("Checkout of %d line(s), ₱%.2f total (%s)", len(sales), total, payment),
		userEmail,
		model.Payload{"lines": len(sales), "total_amount": total, "payment_method": payment})

	return sales, nil
}

func (s *posService) GetAllSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}
