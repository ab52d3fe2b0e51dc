package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/sitter-search/internal/availability"
	"github.com/Leganyst/sitter-search/internal/model"
)

type AvailabilityRepository interface {
	availability.Store

	// Даты с is_available = true начиная с from на horizonDays вперёд,
	// по возрастанию. Используется карточкой профиля.
	ListUpcomingDates(ctx context.Context, sitterID uuid.UUID, from time.Time, horizonDays int) ([]time.Time, error)
}

type GormAvailabilityRepository struct {
	db *gorm.DB
}

func NewGormAvailabilityRepository(db *gorm.DB) *GormAvailabilityRepository {
	return &GormAvailabilityRepository{db: db}
}

func (r *GormAvailabilityRepository) ListRange(
	ctx context.Context,
	sitterID uuid.UUID,
	rng availability.Range,
) ([]availability.DayRecord, error) {
	var rows []model.Availability
	err := r.db.WithContext(ctx).
		Where("sitter_id = ?", sitterID).
		Where("date >= ? AND date <= ?", rng.Start, rng.End).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]availability.DayRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, availability.DayRecord{
			Date:        time.Time(row.Date),
			IsAvailable: row.IsAvailable,
		})
	}
	return records, nil
}

func (r *GormAvailabilityRepository) CountAvailableByRange(
	ctx context.Context,
	rng availability.Range,
) (map[uuid.UUID]int64, error) {
	var rows []struct {
		SitterID uuid.UUID
		Cnt      int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Availability{}).
		Select("sitter_id, COUNT(*) AS cnt").
		Where("date >= ? AND date <= ?", rng.Start, rng.End).
		Where("is_available = ?", true).
		Group("sitter_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.SitterID] = row.Cnt
	}
	return counts, nil
}

func (r *GormAvailabilityRepository) ListUpcomingDates(
	ctx context.Context,
	sitterID uuid.UUID,
	from time.Time,
	horizonDays int,
) ([]time.Time, error) {
	to := availability.DateOnly(from).AddDate(0, 0, horizonDays)

	var rows []model.Availability
	err := r.db.WithContext(ctx).
		Where("sitter_id = ?", sitterID).
		Where("date >= ? AND date <= ?", availability.DateOnly(from), to).
		Where("is_available = ?", true).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, time.Time(row.Date))
	}
	return dates, nil
}
