package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/sitter-search/internal/availability"
	"github.com/Leganyst/sitter-search/internal/geo"
	"github.com/Leganyst/sitter-search/internal/rating"
	"github.com/Leganyst/sitter-search/internal/repository"
)

const (
	// Количество отзывов в карточке профиля.
	profileReviewLimit = 5
	// Горизонт предстоящей доступности в карточке профиля, дней.
	profileHorizonDays = 60
)

// Service — оркестратор поиска: доступность → кандидаты → фильтры →
// сортировка → пагинация → геометрия. Состояния между вызовами не
// держит, вызовы полностью независимы и конкурентны.
type Service struct {
	matcher  *availability.Matcher
	sitters  repository.SitterRepository
	services repository.ServiceRepository
	avail    repository.AvailabilityRepository
	reviews  repository.ReviewRepository
	ratings  *rating.Aggregator
	log      *slog.Logger

	// Источник текущего времени, подменяется в тестах.
	now func() time.Time
}

func NewService(
	matcher *availability.Matcher,
	sitters repository.SitterRepository,
	services repository.ServiceRepository,
	avail repository.AvailabilityRepository,
	reviews repository.ReviewRepository,
	ratings *rating.Aggregator,
	log *slog.Logger,
) *Service {
	return &Service{
		matcher:  matcher,
		sitters:  sitters,
		services: services,
		avail:    avail,
		reviews:  reviews,
		ratings:  ratings,
		log:      log,
		now:      time.Now,
	}
}

// Search выполняет полный конвейер поиска. Любая ошибка коллаборатора
// прерывает запрос целиком: частичная выдача не возвращается. Отмена
// контекста проверяется на границах стадий.
func (s *Service) Search(ctx context.Context, q Query) (*Result, error) {
	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	s.log.Info("sitter search",
		"lat", q.Origin.Lat,
		"lng", q.Origin.Lng,
		"start", q.Range.Start.Format(time.DateOnly),
		"end", q.Range.End.Format(time.DateOnly),
		"sort", string(q.Sort),
		"page", q.Page,
	)

	// Первый проход: ситтеры, доступные каждый день диапазона.
	availableSet, err := s.matcher.FullyAvailableSet(ctx, q.Range)
	if err != nil {
		return nil, fmt.Errorf("availability pass: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(availableSet) == 0 {
		return emptyResult(q), nil
	}

	ids := make([]uuid.UUID, 0, len(availableSet))
	for id := range availableSet {
		ids = append(ids, id)
	}

	sitters, err := s.sitters.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Аннотирование: расстояние от точки запроса и агрегат отзывов.
	candidates := make([]Candidate, 0, len(sitters))
	for _, sitter := range sitters {
		c := Candidate{
			Sitter: sitter,
			Rating: s.ratings.SummaryFor(sitter.ID),
		}
		c.DistanceM = geo.Distance(q.Origin, c.Location())
		candidates = append(candidates, c)
	}

	candidates = ApplyPredicates(candidates, QueryPredicates(q)...)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked := Rank(candidates, q.Sort)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page := Paginate(ranked, q.Page, q.PageSize)
	bbox, fc := Project(page.Items)

	results := make([]SitterSummary, 0, len(page.Items))
	for _, c := range page.Items {
		results = append(results, newSitterSummary(c))
	}

	return &Result{
		Results: results,
		GeoJSON: fc,
		Total:   page.Total,
		Paging: Paging{
			Page:       page.Page,
			PageSize:   page.PageSize,
			TotalPages: page.TotalPages,
		},
		BBox: bbox,
	}, nil
}

// Profile возвращает полную карточку ситтера. Неизвестный ID —
// repository.ErrNotFound, никогда не пустая карточка.
func (s *Service) Profile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	sitter, err := s.sitters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load sitter: %w", err)
	}

	// Для карточки агрегат считается вживую, без снапшота.
	agg, err := s.reviews.AggregateFor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("aggregate rating: %w", err)
	}

	recent, err := s.reviews.ListRecent(ctx, id, profileReviewLimit)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	offerings, err := s.services.ListBySitter(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	dates, err := s.avail.ListUpcomingDates(ctx, id, s.now(), profileHorizonDays)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}

	reviews := make([]ProfileReview, 0, len(recent))
	for _, r := range recent {
		reviews = append(reviews, ProfileReview{
			ID:      r.ID,
			Rating:  r.Rating,
			Comment: r.Comment,
			Date:    r.CreatedAt,
			Owner: ProfileOwner{
				ID:   r.OwnerID,
				Name: r.Owner.PublicName(),
			},
		})
	}

	services := make([]ProfileService, 0, len(offerings))
	for _, svc := range offerings {
		services = append(services, ProfileService{
			Type:         svc.Service,
			PriceDollars: float64(svc.PriceCents) / 100,
		})
	}

	days := make([]string, 0, len(dates))
	for _, d := range dates {
		days = append(days, d.Format(time.DateOnly))
	}

	return &Profile{
		ID:           sitter.ID,
		Name:         sitter.DisplayName(),
		Bio:          sitter.Bio,
		ResponseTime: sitter.ResponseTimeMin,
		RepeatClient: sitter.RepeatClientPct,
		ImageURL:     sitter.ImageURL(),
		Location: ProfileLocation{
			Lat:      sitter.Lat,
			Lng:      sitter.Lng,
			RadiusKm: sitter.RadiusKm,
		},
		Rating: rating.Summary{
			Average: agg.AvgRating,
			Count:   agg.ReviewCount,
		},
		Services:     services,
		Reviews:      reviews,
		Availability: days,
	}, nil
}

func emptyResult(q Query) *Result {
	return &Result{
		Results: []SitterSummary{},
		GeoJSON: geo.NewFeatureCollection(),
		Total:   0,
		Paging: Paging{
			Page:       q.Page,
			PageSize:   q.PageSize,
			TotalPages: 0,
		},
		BBox: nil,
	}
}
