package search

import (
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/sitter-search/internal/geo"
	"github.com/Leganyst/sitter-search/internal/model"
	"github.com/Leganyst/sitter-search/internal/rating"
)

// SitterSummary — строка списочной выдачи поиска. Тарифы в долларах,
// расстояние в милях с одним десятичным знаком: конвертация из
// внутренних центов и метров происходит только здесь.
type SitterSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Bio          string    `json:"bio"`
	DistanceMi   float64   `json:"distanceMi"`
	RateBoarding *float64  `json:"rateBoarding"`
	RateDaycare  *float64  `json:"rateDaycare"`
	ResponseTime *int64    `json:"responseTime"`
	RepeatClient *int64    `json:"repeatClient"`
	AvgRating    float64   `json:"avgRating"`
	ReviewCount  int64     `json:"reviewCount"`
	ImageURL     string    `json:"imageUrl"`
}

// Paging — метаданные пагинации.
type Paging struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Result — полный ответ поиска. Пустая выдача — валидный результат
// с Total == 0 и BBox == nil, а не ошибка.
type Result struct {
	Results []SitterSummary        `json:"results"`
	GeoJSON *geo.FeatureCollection `json:"geojson"`
	Total   int                    `json:"total"`
	Paging  Paging                 `json:"paging"`
	BBox    *geo.BoundingBox       `json:"bbox"`
}

func newSitterSummary(c Candidate) SitterSummary {
	return SitterSummary{
		ID:           c.Sitter.ID,
		Name:         c.Sitter.DisplayName(),
		Bio:          c.Sitter.Bio,
		DistanceMi:   geo.MetersToMiles(c.DistanceM),
		RateBoarding: centsToDollars(c.Sitter.RateBoardingCents),
		RateDaycare:  centsToDollars(c.Sitter.RateDaycareCents),
		ResponseTime: c.Sitter.ResponseTimeMin,
		RepeatClient: c.Sitter.RepeatClientPct,
		AvgRating:    c.Rating.Average,
		ReviewCount:  c.Rating.Count,
		ImageURL:     c.Sitter.ImageURL(),
	}
}

// ===== Профиль ситтера =====

// ProfileOwner — автор отзыва в карточке профиля.
type ProfileOwner struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProfileReview — отзыв в карточке профиля.
type ProfileReview struct {
	ID      uuid.UUID    `json:"id"`
	Rating  int          `json:"rating"`
	Comment string       `json:"comment"`
	Date    time.Time    `json:"date"`
	Owner   ProfileOwner `json:"owner"`
}

// ProfileService — предложение услуги в карточке профиля.
type ProfileService struct {
	Type         model.ServiceKind `json:"type"`
	PriceDollars float64           `json:"priceDollars"`
}

// ProfileLocation — точка и радиус обслуживания.
type ProfileLocation struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RadiusKm float64 `json:"radiusKm"`
}

// Profile — полная карточка ситтера: поля профиля, услуги, последние
// отзывы (новые первыми) и предстоящие доступные даты внутри горизонта.
type Profile struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Bio          string           `json:"bio"`
	ResponseTime *int64           `json:"responseTime"`
	RepeatClient *int64           `json:"repeatClient"`
	ImageURL     string           `json:"imageUrl"`
	Location     ProfileLocation  `json:"location"`
	Rating       rating.Summary   `json:"rating"`
	Services     []ProfileService `json:"services"`
	Reviews      []ProfileReview  `json:"reviews"`
	Availability []string         `json:"availability"`
}
