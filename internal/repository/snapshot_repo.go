package repository

import (
	"go-sari-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SnapshotRepository interface {
	Create(snapshot *model.InventorySnapshot) error
	FindAll() ([]model.InventorySnapshot, error)
	FindByID(id uuid.UUID) (*model.InventorySnapshot, error)
}

type snapshotRepo struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepository {
	return &snapshotRepo{db}
}

func (r *snapshotRepo) Create(snapshot *model.InventorySnapshot) error {
	return r.db.Create(snapshot).Error
}

func (r *snapshotRepo) FindAll() ([]model.InventorySnapshot, error) {
	var snapshots []model.InventorySnapshot
	err := r.db.Order("created_at DESC").Find(&snapshots).Error
	return snapshots, err
}

func (r *snapshotRepo) FindByID(id uuid.UUID) (*model.InventorySnapshot, error) {
	var snapshot model.InventorySnapshot
	err := r.db.First(&snapshot, "id = ?", id).Error
	return &snapshot, err
}
