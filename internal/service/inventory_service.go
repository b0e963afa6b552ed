package service

import (
	"errors"
	"fmt"
	"time"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/repository"
	"go-sari-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryService interface {
	CreateProduct(req *model.Product, userEmail string) error
	UpdateProduct(id uuid.UUID, req *model.Product, userEmail string) (*model.Product, error)
	DeleteProduct(id uuid.UUID, userEmail string) error
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	CreateSnapshot(userEmail string) (*model.InventorySnapshot, error)
	GetAllSnapshots() ([]model.InventorySnapshot, error)
	GetSnapshotByID(id uuid.UUID) (*model.InventorySnapshot, error)
}

type inventoryService struct {
	productRepo  repository.ProductRepository
	snapshotRepo repository.SnapshotRepository
	activity     ActivityService
}

func NewInventoryService(pRepo repository.ProductRepository, sRepo repository.SnapshotRepository, activity ActivityService) InventoryService {
	return &inventoryService{
		productRepo:  pRepo,
		snapshotRepo: sRepo,
		activity:     activity,
	}
}

func (s *inventoryService) CreateProduct(req *model.Product, userEmail string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s (%s)", ErrMissingField, errs[0].FailedField, errs[0].Tag)
	}

	// Derived fields are authoritative on write, whatever the client sent.
	req.RecalculateDerived()
	req.CreatedBy = userEmail
	req.UpdatedBy = userEmail

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.activity.Log("product_created",
		fmt.Sprintf("Added product '%s' (stock %d)", req.Name, req.Stock),
		userEmail,
		model.Payload{"product_id": req.ID, "name": req.Name, "stock": req.Stock})
	return nil
}

func (s *inventoryService) UpdateProduct(id uuid.UUID, req *model.Product, userEmail string) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	existing.Name = req.Name
	existing.Type = req.Type
	existing.Size = req.Size
	existing.QuantityPerPack = req.QuantityPerPack
	existing.CostPerPack = req.CostPerPack
	existing.SellingPrice = req.SellingPrice
	existing.Stock = req.Stock
	existing.RecalculateDerived()
	existing.UpdatedBy = userEmail

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s (%s)", ErrMissingField, errs[0].FailedField, errs[0].Tag)
	}

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	s.activity.Log("product_updated",
		fmt.Sprintf("Updated product '%s'", existing.Name),
		userEmail,
		model.Payload{"product_id": existing.ID, "name": existing.Name, "stock": existing.Stock})
	return existing, nil
}

func (s *inventoryService) DeleteProduct(id uuid.UUID, userEmail string) error {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.productRepo.Delete(id, userEmail); err != nil {
		return err
	}

	s.activity.Log("product_deleted",
		fmt.Sprintf("Removed product '%s'", existing.Name),
		userEmail,
		model.Payload{"product_id": id, "name": existing.Name})
	return nil
}

func (s *inventoryService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *inventoryService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// CreateSnapshot captures the full current product list as an immutable
// ending-inventory record.
func (s *inventoryService) CreateSnapshot(userEmail string) (*model.InventorySnapshot, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	items := make(model.SnapshotItems, 0, len(products))
	totalItems := 0
	for _, p := range products {
		items = append(items, model.SnapshotItem{
			ProductName:   p.Name,
			ProductType:   p.Type,
			Stock:         p.Stock,
			CostPerUnit:   p.CostPerUnit,
			SellingPrice:  p.SellingPrice,
			ProfitPerUnit: p.ProfitPerUnit,
		})
		totalItems += p.Stock
	}

	now := time.Now()
	snapshot := &model.InventorySnapshot{
		SnapshotDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Items:        items,
		TotalItems:   totalItems,
	}
	snapshot.CreatedBy = userEmail

	if err := s.snapshotRepo.Create(snapshot); err != nil {
		return nil, err
	}

	s.activity.Log("snapshot_created",
		fmt.Sprintf("Captured inventory snapshot (%d items)", totalItems),
		userEmail,
		model.Payload{"snapshot_id": snapshot.ID, "total_items": totalItems})
	return snapshot, nil
}

func (s *inventoryService) GetAllSnapshots() ([]model.InventorySnapshot, error) {
	return s.snapshotRepo.FindAll()
}

func (s *inventoryService) GetSnapshotByID(id uuid.UUID) (*model.InventorySnapshot, error) {
	return s.snapshotRepo.FindByID(id)
}
