package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/sitter-search/internal/model"
)

// RatingRow — агрегат из таблицы отзывов: средняя оценка и
// количество отзывов одного ситтера.
type RatingRow struct {
	SitterID    uuid.UUID
	AvgRating   float64
	ReviewCount int64
}

type ReviewRepository interface {
	// Последние limit отзывов ситтера, новые первыми, с авторами.
	ListRecent(ctx context.Context, sitterID uuid.UUID, limit int) ([]model.Review, error)
	// Агрегаты по всем ситтерам, у которых есть хотя бы один отзыв.
	AggregateAll(ctx context.Context) ([]RatingRow, error)
	// Живой агрегат одного ситтера. Ноль отзывов — {0, 0}, не ошибка.
	AggregateFor(ctx context.Context, sitterID uuid.UUID) (RatingRow, error)
}

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) ListRecent(ctx context.Context, sitterID uuid.UUID, limit int) ([]model.Review, error) {
	var reviews []model.Review
	q := r.db.WithContext(ctx).
		Preload("Owner").
		Where("sitter_id = ?", sitterID).
		Order("created_at DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *GormReviewRepository) AggregateAll(ctx context.Context) ([]RatingRow, error) {
	var rows []RatingRow
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("sitter_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count").
		Group("sitter_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormReviewRepository) AggregateFor(ctx context.Context, sitterID uuid.UUID) (RatingRow, error) {
	row := RatingRow{SitterID: sitterID}
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count").
		Where("sitter_id = ?", sitterID).
		Scan(&row).Error
	if err != nil {
		return RatingRow{}, err
	}
	return row, nil
}
