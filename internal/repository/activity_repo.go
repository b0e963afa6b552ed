package repository

import (
	"go-sari-pos/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(entry *model.ActivityLog) error
	FindRecent(limit int) ([]model.ActivityLog, error)
}

type activityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db}
}

func (r *activityRepo) Create(entry *model.ActivityLog) error {
	return r.db.Create(entry).Error
}

func (r *activityRepo) FindRecent(limit int) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
