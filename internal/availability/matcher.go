package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DayRecord — дневная запись доступности ситтера.
type DayRecord struct {
	Date        time.Time
	IsAvailable bool
}

// Store описывает источник записей доступности.
type Store interface {
	// Записи ситтера внутри диапазона.
	ListRange(ctx context.Context, sitterID uuid.UUID, r Range) ([]DayRecord, error)
	// Количество дней с is_available = true внутри диапазона,
	// сгруппированное по ситтерам. Ситтеры без единого дня отсутствуют.
	CountAvailableByRange(ctx context.Context, r Range) (map[uuid.UUID]int64, error)
}

// Matcher проверяет полную доступность ситтера на диапазон дат.
// Семантика строгого AND: каждый день диапазона должен иметь явную
// запись с is_available = true, отсутствующий день — недоступен.
type Matcher struct {
	store Store
}

func NewMatcher(store Store) *Matcher {
	return &Matcher{store: store}
}

// IsFullyAvailable — доступен ли ситтер каждый день диапазона.
func (m *Matcher) IsFullyAvailable(ctx context.Context, sitterID uuid.UUID, r Range) (bool, error) {
	records, err := m.store.ListRange(ctx, sitterID, r)
	if err != nil {
		return false, fmt.Errorf("list availability: %w", err)
	}

	available := make(map[time.Time]bool, len(records))
	for _, rec := range records {
		day := DateOnly(rec.Date)
		// При дубликатах день считается доступным только если
		// доступны все записи (дубликатов быть не должно — uniqueIndex).
		if cur, ok := available[day]; ok {
			available[day] = cur && rec.IsAvailable
			continue
		}
		available[day] = rec.IsAvailable
	}

	for _, d := range r.Dates() {
		if !available[d] {
			return false, nil
		}
	}

	return true, nil
}

// FullyAvailableSet — множество ситтеров, доступных каждый день
// диапазона. Массовая форма IsFullyAvailable для первого прохода
// поиска: один сгруппированный запрос вместо запроса на ситтера.
func (m *Matcher) FullyAvailableSet(ctx context.Context, r Range) (map[uuid.UUID]struct{}, error) {
	counts, err := m.store.CountAvailableByRange(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("count availability: %w", err)
	}

	need := int64(r.Days())
	set := make(map[uuid.UUID]struct{}, len(counts))
	for id, n := range counts {
		if n >= need {
			set[id] = struct{}{}
		}
	}

	return set, nil
}
