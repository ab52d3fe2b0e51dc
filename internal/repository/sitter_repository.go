package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/sitter-search/internal/model"
)

type SitterRepository interface {
	// Найти ситтера по ID вместе с пользователем.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Sitter, error)
	// Ситтеры из множества ID с предзагруженными пользователями и
	// услугами — кандидаты первого прохода поиска.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Sitter, error)
}

type GormSitterRepository struct {
	db *gorm.DB
}

func NewGormSitterRepository(db *gorm.DB) *GormSitterRepository {
	return &GormSitterRepository{db: db}
}

func (r *GormSitterRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Sitter, error) {
	var s model.Sitter
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

func (r *GormSitterRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Sitter, error) {
	if len(ids) == 0 {
		return []model.Sitter{}, nil
	}

	var sitters []model.Sitter
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Services").
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&sitters).Error
	if err != nil {
		return nil, err
	}
	return sitters, nil
}
