package search

import "sort"

// Rank упорядочивает кандидатов по политике сортировки. Порядок —
// детерминированный тотальный: у каждой политики есть вторичные ключи
// вплоть до ID ситтера, поэтому два запуска на одном входе дают
// побайтово одинаковый порядок. Вход не модифицируется.
func Rank(candidates []Candidate, policy SortPolicy) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	var less func(a, b Candidate) bool
	switch policy {
	case SortByRating:
		less = lessByRating
	case SortByPrice:
		less = lessByPrice
	default:
		less = lessByDistance
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})

	return ranked
}

// distance: расстояние по возрастанию, при равенстве — ID по возрастанию.
func lessByDistance(a, b Candidate) bool {
	if a.DistanceM != b.DistanceM {
		return a.DistanceM < b.DistanceM
	}
	return lessByID(a, b)
}

// rating: средняя оценка по убыванию, затем расстояние, затем ID.
func lessByRating(a, b Candidate) bool {
	if a.Rating.Average != b.Rating.Average {
		return a.Rating.Average > b.Rating.Average
	}
	return lessByDistance(a, b)
}

// price: меньший из тарифов по возрастанию, nil в конце,
// затем расстояние, затем ID.
func lessByPrice(a, b Candidate) bool {
	ra, rb := a.MinRateCents(), b.MinRateCents()

	switch {
	case ra == nil && rb == nil:
		return lessByDistance(a, b)
	case ra == nil:
		return false
	case rb == nil:
		return true
	case *ra != *rb:
		return *ra < *rb
	default:
		return lessByDistance(a, b)
	}
}

func lessByID(a, b Candidate) bool {
	return a.Sitter.ID.String() < b.Sitter.ID.String()
}
