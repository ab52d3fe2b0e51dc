package rating

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/sitter-search/internal/repository"
)

// Summary — агрегат отзывов ситтера. Для ситтера без отзывов —
// ровно {Average: 0, Count: 0}, никогда не NaN и не nil.
type Summary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// Source — источник агрегатов (реализуется репозиторием отзывов).
type Source interface {
	AggregateAll(ctx context.Context) ([]repository.RatingRow, error)
}

type snapshot struct {
	byID       map[uuid.UUID]Summary
	computedAt time.Time
}

// Aggregator держит кэш агрегатов в виде снапшота и периодически
// пересчитывает его в фоне. Читатели никогда не блокируются на
// пересчёте: снапшот подменяется атомарно целиком, частичного
// состояния не видно. Допустимое отставание — один интервал
// обновления.
type Aggregator struct {
	source   Source
	interval time.Duration
	log      *slog.Logger

	// Вызывается после каждого успешного пересчёта (метрики).
	OnRefresh func()

	snap atomic.Pointer[snapshot]
}

func NewAggregator(source Source, interval time.Duration, log *slog.Logger) *Aggregator {
	a := &Aggregator{
		source:   source,
		interval: interval,
		log:      log,
	}
	a.snap.Store(&snapshot{byID: map[uuid.UUID]Summary{}})
	return a
}

// SummaryFor возвращает агрегат ситтера из текущего снапшота.
// Не блокируется и не ходит в БД.
func (a *Aggregator) SummaryFor(sitterID uuid.UUID) Summary {
	return a.snap.Load().byID[sitterID]
}

// ComputedAt — время последнего успешного пересчёта.
func (a *Aggregator) ComputedAt() time.Time {
	return a.snap.Load().computedAt
}

// Refresh пересчитывает снапшот из источника и атомарно подменяет его.
// Идемпотентен, безопасен для конкурентного вызова.
func (a *Aggregator) Refresh(ctx context.Context) error {
	rows, err := a.source.AggregateAll(ctx)
	if err != nil {
		return fmt.Errorf("aggregate reviews: %w", err)
	}

	byID := make(map[uuid.UUID]Summary, len(rows))
	for _, row := range rows {
		byID[row.SitterID] = Summary{
			Average: row.AvgRating,
			Count:   row.ReviewCount,
		}
	}

	a.snap.Store(&snapshot{
		byID:       byID,
		computedAt: time.Now().UTC(),
	})

	if a.OnRefresh != nil {
		a.OnRefresh()
	}

	return nil
}

// Run запускает цикл фонового обновления до отмены контекста.
// Первый пересчёт выполняется сразу. Ошибка пересчёта логируется,
// старый снапшот остаётся действующим до следующего тика.
func (a *Aggregator) Run(ctx context.Context) {
	if err := a.Refresh(ctx); err != nil {
		a.log.Error("rating refresh failed", "err", err)
	}

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.Refresh(ctx); err != nil {
				a.log.Error("rating refresh failed", "err", err)
			}
		}
	}
}
