package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/sitter-search/internal/model"
)

type ServiceRepository interface {
	// ListBySitter возвращает предложения услуг ситтера.
	ListBySitter(ctx context.Context, sitterID uuid.UUID) ([]model.SitterService, error)
}

type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) ListBySitter(ctx context.Context, sitterID uuid.UUID) ([]model.SitterService, error) {
	var services []model.SitterService
	err := r.db.WithContext(ctx).
		Where("sitter_id = ?", sitterID).
		Order("service ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}
