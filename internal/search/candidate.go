package search

import (
	"github.com/Leganyst/sitter-search/internal/geo"
	"github.com/Leganyst/sitter-search/internal/model"
	"github.com/Leganyst/sitter-search/internal/rating"
)

// Candidate — ситтер, аннотированный вычисленными для текущего
// запроса расстоянием и агрегатом отзывов.
type Candidate struct {
	Sitter model.Sitter

	// Расстояние от точки запроса до ситтера в метрах. Всегда
	// считается от origin текущего запроса, не кэшируется.
	DistanceM float64

	Rating rating.Summary
}

// Location — координаты ситтера.
func (c Candidate) Location() geo.Point {
	return geo.Point{Lat: c.Sitter.Lat, Lng: c.Sitter.Lng}
}

// MinRateCents — меньший из двух тарифов в центах, nil если оба не
// заданы. Ключ сортировки по цене.
func (c Candidate) MinRateCents() *int64 {
	b := c.Sitter.RateBoardingCents
	d := c.Sitter.RateDaycareCents

	switch {
	case b == nil:
		return d
	case d == nil:
		return b
	case *d < *b:
		return d
	default:
		return b
	}
}
