package search

import (
	"github.com/Leganyst/sitter-search/internal/model"
)

// Predicate — составной булев фильтр над кандидатом. Условия поиска
// собираются из типизированных предикатов и применяются после первого
// прохода по доступности, а не склеиваются в строку запроса.
type Predicate func(Candidate) bool

// WithinServiceRadius — точка запроса внутри индивидуального радиуса
// обслуживания ситтера. Глобального порога расстояния нет.
func WithinServiceRadius() Predicate {
	return func(c Candidate) bool {
		return c.DistanceM <= c.Sitter.RadiusKm*1000
	}
}

// OffersPetSizeCare — фильтр по размеру животного. Упрощённое правило,
// перенесённое из исходной версии как есть: проходит любой ситтер с
// услугой boarding или daycare, сам размер не сверяется. Не ужесточать
// без настоящей модели возможностей ситтера.
func OffersPetSizeCare(size PetSize) Predicate {
	return func(c Candidate) bool {
		for _, svc := range c.Sitter.Services {
			if svc.Service == model.ServiceKindBoarding || svc.Service == model.ServiceKindDaycare {
				return true
			}
		}
		return false
	}
}

// CoversNeeds — фильтр по особым потребностям. Правило-заглушка,
// перенесённое как есть: проходит ситтер с хотя бы одной услугой,
// сами теги не сверяются.
func CoversNeeds(needs []string) Predicate {
	return func(c Candidate) bool {
		return len(c.Sitter.Services) > 0
	}
}

// QueryPredicates собирает набор предикатов для запроса. Радиус
// проверяется всегда, остальные фильтры — только если заданы.
func QueryPredicates(q Query) []Predicate {
	preds := []Predicate{WithinServiceRadius()}
	if q.PetSize != "" {
		preds = append(preds, OffersPetSizeCare(q.PetSize))
	}
	if len(q.Needs) > 0 {
		preds = append(preds, CoversNeeds(q.Needs))
	}
	return preds
}

// ApplyPredicates оставляет кандидатов, проходящих все предикаты.
func ApplyPredicates(candidates []Candidate, preds ...Predicate) []Candidate {
	out := make([]Candidate, 0, len(candidates))

	for _, c := range candidates {
		ok := true
		for _, p := range preds {
			if !p(c) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, c)
		}
	}

	return out
}
