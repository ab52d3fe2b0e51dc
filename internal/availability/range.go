package availability

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("invalid date range")

// Range представляет включительный диапазон календарных дат [Start, End].
// Границы нормализованы к полуночи UTC, время внутри суток не учитывается.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange создаёт диапазон и делает простую валидацию.
// end < start — ошибка; границы местами НЕ меняются, некорректный
// запрос должен быть отклонён, а не молча исправлен.
func NewRange(start, end time.Time) (Range, error) {
	if start.IsZero() || end.IsZero() {
		return Range{}, ErrInvalidRange
	}

	start = DateOnly(start)
	end = DateOnly(end)

	if end.Before(start) {
		return Range{}, ErrInvalidRange
	}

	return Range{Start: start, End: end}, nil
}

// Days — количество календарных дней в диапазоне, включая обе границы.
// start == end — корректный однодневный диапазон, Days() == 1.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Dates разворачивает диапазон в полный список дат.
func (r Range) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Days())
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Contains — входит ли дата в диапазон.
func (r Range) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// DateOnly отбрасывает время внутри суток и переводит дату в UTC.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
