package search

import (
	"errors"
	"testing"
	"time"

	"github.com/Leganyst/sitter-search/internal/availability"
	"github.com/Leganyst/sitter-search/internal/geo"
)

func validQuery(t *testing.T) Query {
	t.Helper()
	r, err := availability.NewRange(
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("new range: %v", err)
	}
	q := Query{
		Origin: geo.Point{Lat: 55.75, Lng: 37.61},
		Range:  r,
	}
	q.Normalize()
	return q
}

func TestQuery_NormalizeDefaults(t *testing.T) {
	q := validQuery(t)
	if q.Page != 1 || q.PageSize != DefaultPageSize || q.Sort != SortByDistance {
		t.Fatalf("wrong defaults: page=%d pageSize=%d sort=%s", q.Page, q.PageSize, q.Sort)
	}
}

func TestQuery_ValidateOK(t *testing.T) {
	q := validQuery(t)
	if err := q.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestQuery_ValidateRejects(t *testing.T) {
	cases := map[string]func(*Query){
		"lat too big":      func(q *Query) { q.Origin.Lat = 91 },
		"lng too small":    func(q *Query) { q.Origin.Lng = -181 },
		"page zero":        func(q *Query) { q.Page = -1 },
		"pageSize too big": func(q *Query) { q.PageSize = 101 },
		"unknown petSize":  func(q *Query) { q.PetSize = "XXL" },
		"unknown sort":     func(q *Query) { q.Sort = "name" },
	}

	for name, mutate := range cases {
		q := validQuery(t)
		mutate(&q)
		err := q.Validate()
		if !errors.Is(err, ErrInvalidQuery) {
			t.Fatalf("%s: expected ErrInvalidQuery, got %v", name, err)
		}
	}
}

func TestQuery_ValidPetSizes(t *testing.T) {
	for _, size := range []PetSize{"", PetSizeXS, PetSizeS, PetSizeM, PetSizeL, PetSizeXL} {
		q := validQuery(t)
		q.PetSize = size
		if err := q.Validate(); err != nil {
			t.Fatalf("petSize %q must be valid: %v", size, err)
		}
	}
}
