package search

import (
	"github.com/Leganyst/sitter-search/internal/geo"
)

// Project строит картографические артефакты по текущей странице
// выдачи: ограничивающий прямоугольник и коллекцию точечных объектов.
// Геометрия отражает то, что показывается, а не всю выборку; пустая
// страница — bbox == nil и пустая коллекция.
func Project(page []Candidate) (*geo.BoundingBox, *geo.FeatureCollection) {
	points := make([]geo.Point, 0, len(page))
	fc := geo.NewFeatureCollection()

	for _, c := range page {
		p := c.Location()
		points = append(points, p)

		// В свойства попадает только то, что нужно карточке на
		// карте; тарифы уже в долларах, как и в списочной выдаче.
		fc.AddPoint(p, map[string]any{
			"id":           c.Sitter.ID,
			"name":         c.Sitter.DisplayName(),
			"rateBoarding": centsToDollars(c.Sitter.RateBoardingCents),
			"rateDaycare":  centsToDollars(c.Sitter.RateDaycareCents),
			"avgRating":    c.Rating.Average,
			"reviewCount":  c.Rating.Count,
			"imageUrl":     c.Sitter.ImageURL(),
		})
	}

	return geo.ComputeBBox(points), fc
}

// centsToDollars переводит центы в доллары на границе ответа.
// nil остаётся nil — тариф не задан.
func centsToDollars(cents *int64) *float64 {
	if cents == nil {
		return nil
	}
	d := float64(*cents) / 100
	return &d
}
