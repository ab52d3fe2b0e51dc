package search

import (
	"errors"
	"fmt"

	"github.com/Leganyst/sitter-search/internal/availability"
	"github.com/Leganyst/sitter-search/internal/geo"
)

// ErrInvalidQuery — запрос не прошёл валидацию. Оборачивается
// конкретной причиной, проверяется через errors.Is.
var ErrInvalidQuery = errors.New("invalid search query")

// Размер животного.
type PetSize string

const (
	PetSizeXS PetSize = "XS"
	PetSizeS  PetSize = "S"
	PetSizeM  PetSize = "M"
	PetSizeL  PetSize = "L"
	PetSizeXL PetSize = "XL"
)

// Политика сортировки выдачи.
type SortPolicy string

const (
	SortByDistance SortPolicy = "distance"
	SortByRating   SortPolicy = "rating"
	SortByPrice    SortPolicy = "price"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Query — валидированные параметры поиска. Разбор сырой query-строки
// происходит на транспортном слое, движок получает уже типизированные
// значения.
type Query struct {
	Origin geo.Point
	Range  availability.Range

	Page     int
	PageSize int

	// Пустое значение — фильтр не задан.
	PetSize PetSize
	Needs   []string

	Sort SortPolicy
}

// Normalize проставляет значения по умолчанию для незаполненных полей.
func (q *Query) Normalize() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Sort == "" {
		q.Sort = SortByDistance
	}
}

// Validate проверяет диапазоны значений. Границы дат не переставляет:
// непорядок дат отбрасывается ещё при построении Range.
func (q *Query) Validate() error {
	if q.Origin.Lat < -90 || q.Origin.Lat > 90 {
		return fmt.Errorf("%w: lat %v out of range [-90, 90]", ErrInvalidQuery, q.Origin.Lat)
	}
	if q.Origin.Lng < -180 || q.Origin.Lng > 180 {
		return fmt.Errorf("%w: lng %v out of range [-180, 180]", ErrInvalidQuery, q.Origin.Lng)
	}
	if q.Range.Start.IsZero() || q.Range.End.IsZero() {
		return fmt.Errorf("%w: date range is required", ErrInvalidQuery)
	}
	if q.Range.End.Before(q.Range.Start) {
		return fmt.Errorf("%w: end before start", ErrInvalidQuery)
	}
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidQuery)
	}
	if q.PageSize < 1 || q.PageSize > MaxPageSize {
		return fmt.Errorf("%w: pageSize must be in [1, %d]", ErrInvalidQuery, MaxPageSize)
	}

	switch q.PetSize {
	case "", PetSizeXS, PetSizeS, PetSizeM, PetSizeL, PetSizeXL:
	default:
		return fmt.Errorf("%w: unknown petSize %q", ErrInvalidQuery, q.PetSize)
	}

	switch q.Sort {
	case SortByDistance, SortByRating, SortByPrice:
	default:
		return fmt.Errorf("%w: unknown sort %q", ErrInvalidQuery, q.Sort)
	}

	return nil
}
