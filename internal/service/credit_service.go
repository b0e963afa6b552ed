package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/repository"
	"go-sari-pos/internal/tariff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerSummary groups utang records by customer name
// (case-insensitive match, free text — not a foreign key).
type CustomerSummary struct {
	CustomerName string  `json:"customer_name"`
	TotalOwed    float64 `json:"total_owed"`
	UnpaidCount  int     `json:"unpaid_count"`
	PaidCount    int     `json:"paid_count"`
}

// CreditService manages the utang ledger. Granting credit takes retail
// stock immediately; settlement replays the cart into sale and service
// transaction rows so the value enters the profit aggregation exactly once.
type CreditService interface {
	Grant(customerName string, items []model.CreditItem, userEmail string) (*model.Credit, error)
	MarkAsPaid(creditID uuid.UUID, userEmail string) (*model.Credit, error)
	Unmark(creditID uuid.UUID, userEmail string) (*model.Credit, error)
	GetAllCredits() ([]model.Credit, error)
	GetTotalUnpaid() (float64, error)
	GetCustomerSummaries() ([]CustomerSummary, error)
}

type creditService struct {
	creditRepo  repository.CreditRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	txRepo      repository.ServiceTransactionRepository
	db          *gorm.DB
	activity    ActivityService
}

func NewCreditService(
	creditRepo repository.CreditRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	txRepo repository.ServiceTransactionRepository,
	db *gorm.DB,
	activity ActivityService,
) CreditService {
	return &creditService{
		creditRepo:  creditRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		txRepo:      txRepo,
		db:          db,
		activity:    activity,
	}
}

func (s *creditService) Grant(customerName string, items []model.CreditItem, userEmail string) (*model.Credit, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, fmt.Errorf("%w: customer_name", ErrMissingField)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, item := range items {
		switch item.Kind {
		case model.CreditItemRetail:
			if item.ProductID == uuid.Nil {
				return nil, fmt.Errorf("%w: product_id", ErrMissingField)
			}
			if item.Quantity <= 0 {
				return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidAmount)
			}
		case model.CreditItemLoad, model.CreditItemEwallet, model.CreditItemBills:
			if strings.TrimSpace(item.Subtype) == "" {
				return nil, fmt.Errorf("%w: subtype", ErrMissingField)
			}
			if item.Amount < tariff.MinimumAmount {
				return nil, fmt.Errorf("%w: got %.2f, minimum is %d", ErrInvalidAmount, item.Amount, tariff.MinimumAmount)
			}
		default:
			return nil, fmt.Errorf("%w: item kind", ErrMissingField)
		}
	}

	var credit *model.Credit
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var total float64
		resolved := make(model.CreditItems, 0, len(items))

		for _, item := range items {
			if item.Kind == model.CreditItemRetail {
				// Stock is taken at grant time, mirroring a cash sale;
				// settlement must not take it again.
				var product model.Product
				if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&product, "id = ?", item.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrProductNotFound
					}
					return err
				}
				if product.Stock < item.Quantity {
					return fmt.Errorf("%w: '%s' has %d left, wanted %d", ErrInsufficientStock, product.Name, product.Stock, item.Quantity)
				}
				if err := s.productRepo.UpdateStock(tx, product.ID, product.Stock-item.Quantity, userEmail); err != nil {
					return err
				}
				// Snapshot price and tubo onto the line so settlement
				// replays the sale exactly as it was priced today.
				item.ProductName = product.Name
				item.UnitPrice = product.SellingPrice
				item.ProfitPerUnit = product.ProfitPerUnit
			}
			total += item.Total()
			resolved = append(resolved, item)
		}

		credit = &model.Credit{
			CustomerName: customerName,
			AmountOwed:   total,
			Items:        resolved,
		}
		credit.CreatedBy = userEmail
		credit.UpdatedBy = userEmail
		return s.creditRepo.Create(tx, credit)
	})
	if err != nil {
		return nil, err
	}

	s.activity.Log("credit_granted",
		fmt.Sprintf("Utang of ₱%.2f granted to %s (%d item/s)", credit.AmountOwed, credit.CustomerName, len(credit.Items)),
		userEmail,
		model.Payload{"credit_id": credit.ID, "customer_name": credit.CustomerName, "amount_owed": credit.AmountOwed})
	return credit, nil
}

// MarkAsPaid settles an utang: flips the flag, then replays every cart line
// into the revenue tables inside the same transaction. A credit that is
// already paid is rejected, never re-emitted.
func (s *creditService) MarkAsPaid(creditID uuid.UUID, userEmail string) (*model.Credit, error) {
	var credit *model.Credit
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		credit, err = s.creditRepo.FindByIDForUpdate(tx, creditID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCreditNotFound
			}
			return err
		}
		if credit.IsPaid {
			return ErrCreditAlreadyPaid
		}

		now := time.Now()
		credit.IsPaid = true
		credit.PaidDate = &now
		credit.UpdatedBy = userEmail
		if err := s.creditRepo.Update(tx, credit); err != nil {
			return err
		}

		for _, item := range credit.Items {
			switch item.Kind {
			case model.CreditItemRetail:
				// Stock was already decremented at grant time.
				sale := model.Sale{
					ProductID:     item.ProductID,
					Quantity:      item.Quantity,
					UnitPrice:     item.UnitPrice,
					TotalAmount:   item.UnitPrice * float64(item.Quantity),
					ProfitPerUnit: item.ProfitPerUnit,
					PaymentMethod: model.PaymentCredit,
				}
				sale.CreatedBy = userEmail
				sale.UpdatedBy = userEmail
				if err := s.saleRepo.Create(tx, &sale); err != nil {
					return err
				}
			case model.CreditItemLoad, model.CreditItemEwallet, model.CreditItemBills:
				serviceType := model.ServiceType(item.Kind)
				// The fee is always recomputed from the tariff table here,
				// never trusted from the stored line.
				record := model.ServiceTransaction{
					Service: serviceType,
					Subtype: item.Subtype,
					Amount:  item.Amount,
					Fee:     tariff.FeeFor(serviceType, item.Amount),
				}
				record.CreatedBy = userEmail
				record.UpdatedBy = userEmail
				if err := s.txRepo.Create(tx, &record); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Log("credit_paid",
		fmt.Sprintf("Utang of ₱%.2f by %s marked as paid", credit.AmountOwed, credit.CustomerName),
		userEmail,
		model.Payload{"credit_id": credit.ID, "customer_name": credit.CustomerName, "amount_owed": credit.AmountOwed})
	return credit, nil
}

// Unmark is an administrative override that flips a paid utang back to
// unpaid. It does not claw back the revenue rows emitted at settlement;
// the override itself is what gets audited.
func (s *creditService) Unmark(creditID uuid.UUID, userEmail string) (*model.Credit, error) {
	var credit *model.Credit
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		credit, err = s.creditRepo.FindByIDForUpdate(tx, creditID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCreditNotFound
			}
			return err
		}
		if !credit.IsPaid {
			return ErrCreditNotPaid
		}

		credit.IsPaid = false
		credit.PaidDate = nil
		credit.UpdatedBy = userEmail
		return s.creditRepo.Update(tx, credit)
	})
	if err != nil {
		return nil, err
	}

	s.activity.Log("credit_unmarked",
		fmt.Sprintf("ADMIN OVERRIDE: utang of ₱%.2f by %s reverted to unpaid", credit.AmountOwed, credit.CustomerName),
		userEmail,
		model.Payload{"credit_id": credit.ID, "customer_name": credit.CustomerName})
	return credit, nil
}

func (s *creditService) GetAllCredits() ([]model.Credit, error) {
	return s.creditRepo.FindAll()
}

func (s *creditService) GetTotalUnpaid() (float64, error) {
	credits, err := s.creditRepo.FindAll()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, c := range credits {
		if !c.IsPaid {
			total += c.AmountOwed
		}
	}
	return total, nil
}

func (s *creditService) GetCustomerSummaries() ([]CustomerSummary, error) {
	credits, err := s.creditRepo.FindAll()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*CustomerSummary)
	var order []string
	for _, c := range credits {
		key := strings.ToLower(strings.TrimSpace(c.CustomerName))
		summary, ok := byName[key]
		if !ok {
			summary = &CustomerSummary{CustomerName: strings.TrimSpace(c.CustomerName)}
			byName[key] = summary
			order = append(order, key)
		}
		if c.IsPaid {
			summary.PaidCount++
		} else {
			summary.UnpaidCount++
			summary.TotalOwed += c.AmountOwed
		}
	}

	summaries := make([]CustomerSummary, 0, len(order))
	for _, key := range order {
		summaries = append(summaries, *byName[key])
	}
	return summaries, nil
}
